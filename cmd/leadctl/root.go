package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/navarrastar/coming-soon/pkg/config"
	"github.com/navarrastar/coming-soon/pkg/form"
)

type submitOptions struct {
	url     string
	name    string
	email   string
	phone   string
	model   string
	timeout time.Duration
}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "leadctl",
		Short:        "Submit and inspect coming-soon leads",
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.SetErr(out)
	root.AddCommand(newSubmitCmd(), newModelsCmd())
	return root
}

func newSubmitCmd() *cobra.Command {
	opts := &submitOptions{}
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Send one lead through the form flow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubmit(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.url, "url", "http://localhost:8080", "base URL of the server")
	flags.StringVar(&opts.name, "name", "", "lead name")
	flags.StringVar(&opts.email, "email", "", "lead email")
	flags.StringVar(&opts.phone, "phone", "", "lead phone")
	flags.StringVar(&opts.model, "model", "", "model selection")
	flags.DurationVar(&opts.timeout, "timeout", 20*time.Second, "request timeout")
	return cmd
}

func runSubmit(cmd *cobra.Command, opts *submitOptions) error {
	// Any model is accepted locally; the server owns the model list.
	st := form.New([]string{opts.model})
	st.Set(form.FieldName, opts.name)
	st.Set(form.FieldEmail, opts.email)
	st.Set(form.FieldPhone, opts.phone)
	st.Dropdown.Choose(opts.model)

	client := form.NewClient(opts.url, &http.Client{Timeout: opts.timeout})
	err := form.Run(cmd.Context(), st, client, time.Now)
	if errors.Is(err, form.ErrInvalidInput) {
		return fmt.Errorf("%s", st.Message())
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", st.Status(), st.Message())
	if st.Status() != form.StatusSucceeded {
		return fmt.Errorf("submission failed")
	}
	return nil
}

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "Print the model options configured by LEAD_MODELS",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(cfg.LeadModels, "\n"))
			return nil
		},
	}
}
