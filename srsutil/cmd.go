/*
Copyright © 2026 the SRS authors.
This file is part of SRS.

SRS is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

SRS is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with SRS.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package srsutil holds the command-line interface for SRS.
package srsutil

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/lnashier/viper"
	"github.com/spatialreason/srs"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to SRS.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "SceneFile",
			usage: `
              SceneFile is the path to the TOML file describing the shapes
              in the scene.`,
			shorthand:  "s",
			defaultVal: "scene.toml",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path the render command writes its SVG
              output to.`,
			shorthand:  "o",
			defaultVal: "scene.svg",
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "HTTPPort",
			usage: `
              HTTPPort is the port the serve command listens on.`,
			defaultVal: "8080",
			flagsets:   []*pflag.FlagSet{serveCmd.Flags()},
		},
		{
			name: "Canvas.Width",
			usage: `
              Canvas.Width is the width of the rendering canvas in pixels.`,
			defaultVal: 800,
			flagsets:   []*pflag.FlagSet{renderCmd.Flags(), serveCmd.Flags()},
		},
		{
			name: "Canvas.Height",
			usage: `
              Canvas.Height is the height of the rendering canvas in pixels.`,
			defaultVal: 600,
			flagsets:   []*pflag.FlagSet{renderCmd.Flags(), serveCmd.Flags()},
		},
		{
			name: "Canvas.Scale",
			usage: `
              Canvas.Scale is the scale factor from world units to pixels.`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{renderCmd.Flags(), serveCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("SRS")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(queryCmd)
	Root.AddCommand(orientationsCmd)
	Root.AddCommand(renderCmd)
	Root.AddCommand(serveCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("srs: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// loadScene reads the configured scene file.
func loadScene() (*srs.Scene, error) {
	if err := setConfig(); err != nil {
		return nil, err
	}
	return srs.ReadSceneFile(os.ExpandEnv(Cfg.GetString("SceneFile")))
}

// canvas builds the rendering canvas from the configuration.
func canvas() srs.Canvas {
	return srs.Canvas{
		Width:  cast.ToInt(Cfg.Get("Canvas.Width")),
		Height: cast.ToInt(Cfg.Get("Canvas.Height")),
		Scale:  cast.ToFloat64(Cfg.Get("Canvas.Scale")),
	}
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "srs",
	Short: "A qualitative spatial reasoning system.",
	Long: `SRS answers qualitative spatial-relation queries between pairs of 2D
shapes: topological relations from the Region Connection Calculus and
egocentric or allocentric orientation relations.

Refer to the subcommand documentation for configuration options and default
settings. Configuration can be changed by using a configuration file (and
providing the path to the file using the --config flag), by using
command-line arguments, or by setting environment variables in the format
'SRS_var' where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
}

var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print the version number",
	Long:              "version prints the version number of this version of SRS.",
	DisableAutoGenTag: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("SRS v%s\n", srs.Version)
	},
}

var queryCmd = &cobra.Command{
	Use:   "query kind referenceId primaryId",
	Short: "Run a two-object query against the scene.",
	Long: `query loads the configured scene file and runs a single two-object
query. The kind must be one of RCC_DR, RCC_PO, RCC_EQ, RCC_PP, RCC_PPI,
ORIENTATION, or ALLOCENTRIC_ORIENTATION; the two remaining arguments are
the reference and primary shape ids.`,
	Args:              cobra.ExactArgs(3),
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := srs.ParseQueryKind(args[0])
		if err != nil {
			return err
		}
		referenceID, err := cast.ToIntE(args[1])
		if err != nil {
			return fmt.Errorf("srs: malformed reference id %q: %v", args[1], err)
		}
		primaryID, err := cast.ToIntE(args[2])
		if err != nil {
			return fmt.Errorf("srs: malformed primary id %q: %v", args[2], err)
		}
		scene, err := loadScene()
		if err != nil {
			return err
		}
		result, err := scene.TwoObjectQuery(kind, referenceID, primaryID)
		if err != nil {
			return err
		}
		if _, isRCC := kind.Relation(); isRCC {
			fmt.Printf("%v(%d, %d) = %t (%s)\n", kind, referenceID, primaryID,
				result.Holds, result.Label())
		} else {
			fmt.Printf("%v(%d, %d) = %s\n", kind, referenceID, primaryID, result.Label())
		}
		return nil
	},
}

var orientationsCmd = &cobra.Command{
	Use:   "orientations",
	Short: "Print all pairwise allocentric orientations.",
	Long: `orientations loads the configured scene file and prints the
allocentric orientation of every ordered pair of shapes.`,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		scene, err := loadScene()
		if err != nil {
			return err
		}
		return scene.WriteRelativeOrientations(os.Stdout)
	},
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the scene to an SVG file.",
	Long: `render loads the configured scene file and draws every shape,
together with its facing indicator and label, to the configured output
file.`,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		scene, err := loadScene()
		if err != nil {
			return err
		}
		out := os.ExpandEnv(Cfg.GetString("OutputFile"))
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("srs: problem creating output file: %v", err)
		}
		defer f.Close()
		scene.RenderSVG(f, canvas())
		log.Printf("Wrote %s", out)
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scene over HTTP.",
	Long: `serve loads the configured scene file and serves it over HTTP:
shape listings and queries as JSON, the canvas as SVG, and the pairwise
orientation table as plain text.`,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		scene, err := loadScene()
		if err != nil {
			return err
		}
		server := srs.NewSceneServer(scene, canvas())
		addr := ":" + Cfg.GetString("HTTPPort")
		log.Printf("Server starting at %s...", addr)
		return http.ListenAndServe(addr, server)
	},
}
