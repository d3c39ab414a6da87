// Command pancad evaluates PanCAD part scripts and exports sketches and
// solids to SVG, STL and FreeCAD document JSON.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pancad/pancad/pkg/config"
	"github.com/pancad/pancad/pkg/feature"
	"github.com/pancad/pancad/pkg/freecad"
	"github.com/pancad/pancad/pkg/script"
	"github.com/pancad/pancad/pkg/solid"
	"github.com/pancad/pancad/pkg/svg"
)

var (
	rootCmd = &cobra.Command{
		Use:   "pancad",
		Short: "Script-driven 2D/3D part modeling",
	}
	configPath string
	outputPath string
	sketchUID  string
	meshCells  int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c",
		"pancad.yaml", "Path to the configuration file")

	svgCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file")
	svgCmd.Flags().StringVar(&sketchUID, "sketch", "", "UID of the sketch to render")
	stlCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file")
	stlCmd.Flags().IntVar(&meshCells, "cells", 0, "Marching cubes resolution")
	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file")

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(svgCmd)
	rootCmd.AddCommand(stlCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func loadConfig() *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	return cfg
}

// evalScript runs a script file and fails the command on evaluation
// errors.
func evalScript(path string) *feature.PartFile {
	source, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("%v", err)
	}
	engine := script.NewEngine()
	part, evalErrs, err := engine.Evaluate(string(source))
	if err != nil {
		log.Fatalf("evaluating %s: %v", path, err)
	}
	for _, e := range evalErrs {
		fmt.Fprintf(os.Stderr, "%s: %s\n", path, e.Error())
	}
	if part == nil {
		os.Exit(1)
	}
	return part
}

// outputFile resolves the output path for a command: the -o flag when
// given, otherwise the script name with a new extension under the
// configured output directory.
func outputFile(cfg *config.Config, scriptPath, ext string) string {
	if outputPath != "" {
		return outputPath
	}
	base := strings.TrimSuffix(filepath.Base(scriptPath), filepath.Ext(scriptPath))
	return filepath.Join(cfg.OutputDir, base+ext)
}

func summarize(p *feature.PartFile) {
	fmt.Printf("part %q: %d features\n", p.Metadata.Title, p.Len())
	for _, sk := range p.Sketches() {
		fmt.Printf("  sketch %s on %s: %d elements, %d constraints\n",
			sk.UID(), sk.PlaneReference(), len(sk.Geometry()), len(sk.Constraints()))
	}
	for _, ex := range p.Extrudes() {
		fmt.Printf("  extrude %s: %s length %g\n",
			ex.UID(), ex.LengthType(), ex.Length())
	}
}

var evalCmd = &cobra.Command{
	Use:   "eval <script>",
	Short: "Evaluate a part script and print its feature summary",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		summarize(evalScript(args[0]))
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <script>",
	Short: "Evaluate a part script and run the validation passes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		part := evalScript(args[0])
		findings := feature.Validate(&part.Container)
		fatal := false
		for _, f := range findings {
			fmt.Println(f.Error())
			if f.Severity == feature.SeverityError {
				fatal = true
			}
		}
		if fatal {
			os.Exit(1)
		}
		fmt.Printf("part %q is valid\n", part.Metadata.Title)
	},
}

var svgCmd = &cobra.Command{
	Use:   "svg <script>",
	Short: "Render a sketch to SVG",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		part := evalScript(args[0])
		sketches := part.Sketches()
		if len(sketches) == 0 {
			log.Fatalf("part %q has no sketches", part.Metadata.Title)
		}
		sk := sketches[0]
		if sketchUID != "" {
			sk = nil
			for _, s := range sketches {
				if s.UID() == sketchUID {
					sk = s
					break
				}
			}
			if sk == nil {
				log.Fatalf("part has no sketch %q", sketchUID)
			}
		}

		opts := svg.Options{
			Margin:              cfg.SVG.Margin,
			Scale:               cfg.SVG.Scale,
			StrokeWidth:         cfg.SVG.StrokeWidth,
			IncludeConstruction: cfg.SVG.IncludeConstruction,
		}
		path := outputFile(cfg, args[0], ".svg")
		f, err := os.Create(path)
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer f.Close()
		if err := svg.WriteSketch(f, sk, opts); err != nil {
			log.Fatalf("rendering %s: %v", path, err)
		}
		fmt.Printf("wrote %s\n", path)
	},
}

var stlCmd = &cobra.Command{
	Use:   "stl <script>",
	Short: "Tessellate the part's solid body to an STL file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		part := evalScript(args[0])
		body, err := solid.FromPart(part)
		if err != nil {
			log.Fatalf("%v", err)
		}
		cells := meshCells
		if cells <= 0 {
			cells = cfg.Solid.MeshCells
		}
		path := outputFile(cfg, args[0], ".stl")
		solid.WriteSTL(body, path, cells)
		fmt.Printf("wrote %s\n", path)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <script>",
	Short: "Translate the part into FreeCAD document JSON",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		part := evalScript(args[0])
		doc, _, err := freecad.PartToDocument(part)
		if err != nil {
			log.Fatalf("translating %q: %v", part.Metadata.Title, err)
		}
		path := outputFile(cfg, args[0], ".fcdoc.json")
		f, err := os.Create(path)
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer f.Close()
		if err := freecad.WriteDocument(f, doc); err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Printf("wrote %s\n", path)
	},
}

var importCmd = &cobra.Command{
	Use:   "import <document.json>",
	Short: "Read FreeCAD document JSON back into a part and summarize it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer f.Close()
		doc, err := freecad.ReadDocument(f)
		if err != nil {
			log.Fatalf("%v", err)
		}
		part, _, err := freecad.DocumentToPart(doc)
		if err != nil {
			log.Fatalf("translating %s: %v", args[0], err)
		}
		summarize(part)
	},
}
