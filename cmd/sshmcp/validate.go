package main

import (
	"errors"
	"fmt"

	"github.com/ruffel/sshmcp/internal/validate"
	"github.com/spf13/cobra"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the .env file and UBUNTU_SSH_* settings",
		Long:  `Checks that .env exists (creating it from .env.example when missing), that host and username are set, that password or key authentication is usable and that the port is valid.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Println(titleStyle.Render("🔍 SSH MCP Server - Configuration Validator"))

			report := validate.New(validate.WithEnvFile(opts.envFile)).Run()
			renderReport(report)

			if !report.OK() {
				return errors.New("some issues were found; please fix them before running the server")
			}

			fmt.Println(checkStyle.Render("✅ All checks passed! Run `sshmcp serve` to start the server."))

			return nil
		},
	}
}

func renderReport(report validate.Report) {
	section := ""

	for _, f := range report.Findings {
		if f.Section != section {
			section = f.Section
			fmt.Println(sectionStyle.Render(section + ":"))
		}

		line := fmt.Sprintf("[%s] %s", f.Level, f.Message)

		switch f.Level {
		case validate.LevelOK:
			fmt.Println(passedStyle.Render(line))
		case validate.LevelError:
			fmt.Println(failedStyle.Render(line))
		default:
			fmt.Println(infoStyle.Render(line))
		}
	}
}
