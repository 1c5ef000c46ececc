package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	vladify "github.com/vladify/vladify"
	"github.com/vladify/vladify/dsl"
)

var (
	schemaPath string
	failFast   bool
)

var rootCmd = &cobra.Command{
	Use:   "vladify -s schema.json data.json [data2.yaml ...]",
	Short: "Validate structured documents against a declarative schema",
	Long: `Vladify validates JSON or YAML documents against a declarative schema,
detecting type errors, range violations, duplicate keys and dangling
cross-references between parts of the document.`,
	Args:          cobra.MinimumNArgs(1),
	RunE:          runValidate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "path to the schema description (JSON or YAML)")
	rootCmd.Flags().BoolVarP(&failFast, "failfast", "f", false, "stop validation on the first error")
	_ = rootCmd.MarkFlagRequired("schema")
}

// Execute runs the root command and maps failures to a non-zero exit status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	desc, err := vladify.DecodeFile(schemaPath)
	if err != nil {
		return fmt.Errorf("load schema: %w", err)
	}
	schema, err := dsl.Build(desc)
	if err != nil {
		return fmt.Errorf("build schema: %w", err)
	}

	for _, path := range args {
		fmt.Printf("Opening and validating '%s'...\n", path)
		if err := validateFile(path, schema); err != nil {
			return err
		}
	}
	color.Green("Ok")
	return nil
}

func validateFile(path string, schema vladify.Schema) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var data any
	if vladify.IsYAMLPath(path) {
		data, err = vladify.DecodeYAML(raw)
	} else {
		// JSON decoders keep the last of duplicated keys, so scan the raw
		// bytes first.
		var dups vladify.Issues
		dups, err = vladify.DetectDuplicateKeys(raw)
		if err == nil && len(dups) > 0 {
			return fmt.Errorf("%s: %w", path, dups)
		}
		if err == nil {
			data, err = vladify.DecodeJSON(raw)
		}
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	doc, err := vladify.NewDocument(data, schema)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	var rep vladify.Reporter
	if failFast {
		rep = vladify.FailFast()
	} else {
		rep = vladify.Aggregate()
	}
	if err := rep.Validate(doc); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	fmt.Printf("%d checks performed on %d fields.\n", rep.NumChecks(), rep.NumFields())
	return nil
}
