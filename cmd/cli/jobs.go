package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

func newJobsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Browse and manage jobs",
	}

	cmd.AddCommand(newJobsListCmd())
	cmd.AddCommand(newJobsGetCmd())
	cmd.AddCommand(newJobsCreateCmd())
	cmd.AddCommand(newJobsUpdateCmd())
	cmd.AddCommand(newJobsDeleteCmd())
	return cmd
}

// jobsQuery builds the /jobs query string. minSalary < 0 means unset.
func jobsQuery(title string, minSalary int, hasEquity bool) url.Values {
	query := url.Values{}
	if title != "" {
		query.Set("title", title)
	}
	if minSalary >= 0 {
		query.Set("minSalary", strconv.Itoa(minSalary))
	}
	if hasEquity {
		query.Set("hasEquity", "true")
	}
	return query
}

func newJobsListCmd() *cobra.Command {
	var title string
	var minSalary int
	var hasEquity bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := getClient().Get("/jobs", jobsQuery(title, minSalary, hasEquity))
			if err != nil {
				return err
			}

			if flagJSON {
				printRaw(body)
				return nil
			}

			var resp struct {
				Jobs []Job `json:"jobs"`
			}
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			headers := []string{"ID", "TITLE", "SALARY", "EQUITY", "COMPANY"}
			var rows [][]string
			for _, j := range resp.Jobs {
				rows = append(rows, []string{
					strconv.Itoa(j.ID),
					truncate(j.Title, 40),
					formatInt(j.Salary),
					formatFloat(j.Equity),
					j.CompanyHandle,
				})
			}
			printTable(headers, rows)
			printMessage(fmt.Sprintf("\n%d jobs", len(resp.Jobs)))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Case-insensitive title substring")
	cmd.Flags().IntVar(&minSalary, "min-salary", -1, "Minimum salary")
	cmd.Flags().BoolVar(&hasEquity, "has-equity", false, "Only jobs offering equity")
	return cmd
}

func newJobsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a job and its company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := strconv.Atoi(args[0]); err != nil {
				return fmt.Errorf("invalid job ID: %s", args[0])
			}

			body, err := getClient().Get("/jobs/"+args[0], nil)
			if err != nil {
				return err
			}

			if flagJSON {
				printRaw(body)
				return nil
			}

			var resp struct {
				Job JobDetail `json:"job"`
			}
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			j := resp.Job
			printMessage(fmt.Sprintf("ID:      %d", j.ID))
			printMessage(fmt.Sprintf("Title:   %s", j.Title))
			printMessage(fmt.Sprintf("Salary:  %s", formatInt(j.Salary)))
			printMessage(fmt.Sprintf("Equity:  %s", formatFloat(j.Equity)))
			if j.Company != nil {
				printMessage(fmt.Sprintf("Company: %s (%s)", j.Company.Name, j.Company.Handle))
				printMessage(fmt.Sprintf("         %s", truncate(j.Company.Description, 60)))
			}
			return nil
		},
	}
}

func newJobsCreateCmd() *cobra.Command {
	var title, companyHandle string
	var salary int
	var equity float64

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a job (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getAuthedClient()
			if err != nil {
				return err
			}

			req := CreateJobRequest{
				Title:         title,
				CompanyHandle: companyHandle,
			}
			if cmd.Flags().Changed("salary") {
				req.Salary = &salary
			}
			if cmd.Flags().Changed("equity") {
				req.Equity = &equity
			}

			body, err := client.Post("/jobs", req)
			if err != nil {
				return err
			}

			if flagJSON {
				printRaw(body)
				return nil
			}

			var resp struct {
				Job Job `json:"job"`
			}
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			printMessage(fmt.Sprintf("Job created: %s (ID: %d)", resp.Job.Title, resp.Job.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Job title (required)")
	cmd.Flags().StringVar(&companyHandle, "company", "", "Company handle (required)")
	cmd.Flags().IntVar(&salary, "salary", 0, "Salary")
	cmd.Flags().Float64Var(&equity, "equity", 0, "Equity share between 0 and 1")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("company")
	return cmd
}

func newJobsUpdateCmd() *cobra.Command {
	var title string
	var salary int
	var equity float64
	var clearSalary, clearEquity bool

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a job (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getAuthedClient()
			if err != nil {
				return err
			}

			req := map[string]interface{}{}
			if cmd.Flags().Changed("title") {
				req["title"] = title
			}
			if cmd.Flags().Changed("salary") {
				req["salary"] = salary
			}
			if cmd.Flags().Changed("equity") {
				req["equity"] = equity
			}
			if clearSalary {
				req["salary"] = nil
			}
			if clearEquity {
				req["equity"] = nil
			}
			if len(req) == 0 {
				return fmt.Errorf("nothing to update: pass --title, --salary, --equity, --clear-salary or --clear-equity")
			}

			body, err := client.Patch("/jobs/"+args[0], req)
			if err != nil {
				return err
			}

			if flagJSON {
				printRaw(body)
				return nil
			}

			var resp struct {
				Job Job `json:"job"`
			}
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			printMessage(fmt.Sprintf("Job updated: %s (ID: %d)", resp.Job.Title, resp.Job.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().IntVar(&salary, "salary", 0, "New salary")
	cmd.Flags().Float64Var(&equity, "equity", 0, "New equity share")
	cmd.Flags().BoolVar(&clearSalary, "clear-salary", false, "Remove the salary")
	cmd.Flags().BoolVar(&clearEquity, "clear-equity", false, "Remove the equity share")
	return cmd
}

func newJobsDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a job (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getAuthedClient()
			if err != nil {
				return err
			}

			if !confirmAction("Delete job "+args[0]+"?", yes) {
				printMessage("Aborted")
				return nil
			}

			body, err := client.Delete("/jobs/" + args[0])
			if err != nil {
				return err
			}

			if flagJSON {
				printRaw(body)
				return nil
			}

			var resp DeletedResponse
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}
			printMessage("Job deleted: " + resp.Deleted)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation prompt")
	return cmd
}
