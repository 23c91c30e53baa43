package main

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
)

func newCompaniesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "companies",
		Short: "Browse and manage companies",
	}

	cmd.AddCommand(newCompaniesListCmd())
	cmd.AddCommand(newCompaniesGetCmd())
	cmd.AddCommand(newCompaniesCreateCmd())
	cmd.AddCommand(newCompaniesUpdateCmd())
	cmd.AddCommand(newCompaniesDeleteCmd())
	cmd.AddCommand(newCompaniesLogoCmd())
	return cmd
}

func newCompaniesListCmd() *cobra.Command {
	var name string
	var minEmployees, maxEmployees int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List companies",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if name != "" {
				query.Set("name", name)
			}
			if cmd.Flags().Changed("min-employees") {
				query.Set("minEmployees", strconv.Itoa(minEmployees))
			}
			if cmd.Flags().Changed("max-employees") {
				query.Set("maxEmployees", strconv.Itoa(maxEmployees))
			}

			body, err := getClient().Get("/companies", query)
			if err != nil {
				return err
			}

			if flagJSON {
				printRaw(body)
				return nil
			}

			var resp struct {
				Companies []Company `json:"companies"`
			}
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			headers := []string{"HANDLE", "NAME", "EMPLOYEES", "DESCRIPTION"}
			var rows [][]string
			for _, c := range resp.Companies {
				rows = append(rows, []string{
					c.Handle,
					c.Name,
					formatInt(c.NumEmployees),
					truncate(c.Description, 40),
				})
			}
			printTable(headers, rows)
			printMessage(fmt.Sprintf("\n%d companies", len(resp.Companies)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Case-insensitive name substring")
	cmd.Flags().IntVar(&minEmployees, "min-employees", 0, "Minimum number of employees")
	cmd.Flags().IntVar(&maxEmployees, "max-employees", 0, "Maximum number of employees")
	return cmd
}

func newCompaniesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <handle>",
		Short: "Show a company and its jobs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := getClient().Get("/companies/"+url.PathEscape(args[0]), nil)
			if err != nil {
				return err
			}

			if flagJSON {
				printRaw(body)
				return nil
			}

			var resp struct {
				Company Company `json:"company"`
			}
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			c := resp.Company
			printMessage(fmt.Sprintf("Handle:      %s", c.Handle))
			printMessage(fmt.Sprintf("Name:        %s", c.Name))
			printMessage(fmt.Sprintf("Employees:   %s", formatInt(c.NumEmployees)))
			printMessage(fmt.Sprintf("Description: %s", c.Description))
			if c.LogoURL != nil {
				printMessage(fmt.Sprintf("Logo:        %s", *c.LogoURL))
			}

			if len(c.Jobs) > 0 {
				printMessage("")
				headers := []string{"ID", "TITLE", "SALARY", "EQUITY"}
				var rows [][]string
				for _, j := range c.Jobs {
					rows = append(rows, []string{
						strconv.Itoa(j.ID),
						truncate(j.Title, 40),
						formatInt(j.Salary),
						formatFloat(j.Equity),
					})
				}
				printTable(headers, rows)
			}
			return nil
		},
	}
}

func newCompaniesCreateCmd() *cobra.Command {
	var handle, name, description, logoURL string
	var numEmployees int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a company (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getAuthedClient()
			if err != nil {
				return err
			}

			req := CreateCompanyRequest{
				Handle:      handle,
				Name:        name,
				Description: description,
			}
			if cmd.Flags().Changed("employees") {
				req.NumEmployees = &numEmployees
			}
			if logoURL != "" {
				req.LogoURL = &logoURL
			}

			body, err := client.Post("/companies", req)
			if err != nil {
				return err
			}

			if flagJSON {
				printRaw(body)
				return nil
			}

			var resp struct {
				Company Company `json:"company"`
			}
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			printMessage(fmt.Sprintf("Company created: %s (%s)", resp.Company.Name, resp.Company.Handle))
			return nil
		},
	}

	cmd.Flags().StringVar(&handle, "handle", "", "Lowercase handle (required)")
	cmd.Flags().StringVar(&name, "name", "", "Company name (required)")
	cmd.Flags().StringVar(&description, "description", "", "Description (required)")
	cmd.Flags().IntVar(&numEmployees, "employees", 0, "Number of employees")
	cmd.Flags().StringVar(&logoURL, "logo-url", "", "Logo URL")
	cmd.MarkFlagRequired("handle")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("description")
	return cmd
}

func newCompaniesUpdateCmd() *cobra.Command {
	var name, description, logoURL string
	var numEmployees int
	var clearEmployees, clearLogo bool

	cmd := &cobra.Command{
		Use:   "update <handle>",
		Short: "Update a company (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getAuthedClient()
			if err != nil {
				return err
			}

			req := map[string]interface{}{}
			if cmd.Flags().Changed("name") {
				req["name"] = name
			}
			if cmd.Flags().Changed("description") {
				req["description"] = description
			}
			if cmd.Flags().Changed("employees") {
				req["numEmployees"] = numEmployees
			}
			if cmd.Flags().Changed("logo-url") {
				req["logoUrl"] = logoURL
			}
			if clearEmployees {
				req["numEmployees"] = nil
			}
			if clearLogo {
				req["logoUrl"] = nil
			}
			if len(req) == 0 {
				return fmt.Errorf("nothing to update")
			}

			body, err := client.Patch("/companies/"+url.PathEscape(args[0]), req)
			if err != nil {
				return err
			}

			if flagJSON {
				printRaw(body)
				return nil
			}

			var resp struct {
				Company Company `json:"company"`
			}
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			printMessage(fmt.Sprintf("Company updated: %s (%s)", resp.Company.Name, resp.Company.Handle))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().IntVar(&numEmployees, "employees", 0, "New number of employees")
	cmd.Flags().StringVar(&logoURL, "logo-url", "", "New logo URL")
	cmd.Flags().BoolVar(&clearEmployees, "clear-employees", false, "Remove the employee count")
	cmd.Flags().BoolVar(&clearLogo, "clear-logo", false, "Remove the logo URL")
	return cmd
}

func newCompaniesDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <handle>",
		Short: "Delete a company and all its jobs (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getAuthedClient()
			if err != nil {
				return err
			}

			if !confirmAction("Delete company "+args[0]+" and all of its jobs?", yes) {
				printMessage("Aborted")
				return nil
			}

			body, err := client.Delete("/companies/" + url.PathEscape(args[0]))
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
			printMessage("Company deleted: " + resp.Deleted)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation prompt")
	return cmd
}

func newCompaniesLogoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logo <handle> <file>",
		Short: "Upload a company logo (admin)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getAuthedClient()
			if err != nil {
				return err
			}

			contentType := mime.TypeByExtension(filepath.Ext(args[1]))
			if contentType == "" {
				return fmt.Errorf("cannot determine image type of %s", args[1])
			}

			f, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("failed to open logo: %w", err)
			}
			defer f.Close()

			body, err := client.PutFile("/companies/"+url.PathEscape(args[0])+"/logo", contentType, f)
			if err != nil {
				return err
			}

			if flagJSON {
				printRaw(body)
				return nil
			}

			var resp struct {
				Company Company `json:"company"`
			}
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}
			if resp.Company.LogoURL != nil {
				printMessage("Logo uploaded: " + *resp.Company.LogoURL)
			}
			return nil
		},
	}
}
