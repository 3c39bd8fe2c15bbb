package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/swaggo/swag"
	"gopkg.in/yaml.v3"

	"github.com/mwhitten/apiforge/internal/config"
	"github.com/mwhitten/apiforge/internal/openapi"
)

func newSpecCmd() *cobra.Command {
	var (
		variant string
		format  string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "spec",
		Short: "Export a processed API document",
		Long:  "Runs the document filter pipeline once and writes the resulting Main or Demo document.",
		RunE: func(cmd *cobra.Command, args []string) error {
			docsCfg, err := config.LoadDocs()
			if err != nil {
				return err
			}

			generator := openapi.NewGenerator(
				openapi.SourceFunc(func() (string, error) { return swag.ReadDoc() }),
				openapi.GeneratorConfig{
					MainTitle:  docsCfg.MainTitle,
					DemoTitle:  docsCfg.DemoTitle,
					DemoPrefix: docsCfg.DemoPrefix,
				},
			)

			doc, err := generator.Document(openapi.Variant(variant))
			if err != nil {
				return err
			}

			out := doc
			switch format {
			case "json":
			case "yaml":
				// JSON is a YAML subset; round-tripping through a yaml.Node
				// keeps the pipeline's key order.
				var node yaml.Node
				if err := yaml.Unmarshal(doc, &node); err != nil {
					return fmt.Errorf("convert document to yaml: %w", err)
				}
				out, err = yaml.Marshal(&node)
				if err != nil {
					return fmt.Errorf("encode yaml: %w", err)
				}
			default:
				return fmt.Errorf("unknown format %q: must be json or yaml", format)
			}

			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(outPath, out, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&variant, "variant", "main", "document variant to export (main or demo)")
	cmd.Flags().StringVar(&format, "format", "json", "output format (json or yaml)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	return cmd
}
