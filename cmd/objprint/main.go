/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/objprint/apis"
	"dirpx.dev/objprint/config"
)

type app struct {
	log *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}
	var verbose bool

	root := &cobra.Command{
		Use:           "objprint",
		Short:         "Render sample records with printing profiles",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if !verbose {
			return nil
		}
		log, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		a.log = log
		return nil
	}

	root.AddCommand(newDemoCmd(a), newValidateCmd(a))
	return root
}

func newDemoCmd(a *app) *cobra.Command {
	var (
		profilePath string
		lineBreak   string
	)
	cmd := &cobra.Command{
		Use:   "demo [SAMPLE...]",
		Short: "Render the built-in sample records",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				for _, s := range samples {
					names = append(names, s.name)
				}
			}

			var profile *config.Profile
			if profilePath != "" {
				p, err := config.LoadProfile(profilePath)
				if err != nil {
					return err
				}
				profile = &p
			}

			opts, err := config.Profile{LineBreak: lineBreak}.Options()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range names {
				s, ok := findSample(name)
				if !ok {
					return fmt.Errorf("unknown sample %q (known: %s)", name, sampleNames())
				}
				a.log.Debug("rendering sample", zap.String("sample", name), zap.String("profile", profilePath))
				text, err := s.render(profile, a.log, opts)
				if err != nil {
					return fmt.Errorf("sample %s: %w", name, err)
				}
				if _, err := io.WriteString(out, text); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&profilePath, "profile", "p", "", "printing profile (.toml or .hcl)")
	cmd.Flags().StringVar(&lineBreak, "line-break", "", "line break: platform, lf or crlf")
	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	var sampleName string
	cmd := &cobra.Command{
		Use:   "validate PROFILE...",
		Short: "Check printing profiles against a sample record type",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ok := findSample(sampleName)
			if !ok {
				return fmt.Errorf("unknown sample %q (known: %s)", sampleName, sampleNames())
			}
			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				snap, err := loadAndValidate(s, path)
				if err != nil {
					a.log.Debug("profile rejected", zap.String("path", path), zap.Error(err))
					fmt.Fprintf(out, "%s: %v\n", path, err)
					failed++
					continue
				}
				fmt.Fprintf(out, "%s: ok (%s)\n", path, describe(snap))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d profiles invalid", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&sampleName, "sample", "s", "person", "sample record type the profile targets")
	return cmd
}

func loadAndValidate(s sample, path string) (apis.Snapshot, error) {
	p, err := config.LoadProfile(path)
	if err != nil {
		return apis.Snapshot{}, err
	}
	return s.validate(p)
}

func describe(snap apis.Snapshot) string {
	var parts []string
	if len(snap.ExcludedTypes) > 0 {
		names := make([]string, 0, len(snap.ExcludedTypes))
		for _, t := range snap.ExcludedTypes {
			names = append(names, t.String())
		}
		parts = append(parts, "excluded types: "+strings.Join(names, ", "))
	}
	if len(snap.ExcludedProperties) > 0 {
		names := make([]string, 0, len(snap.ExcludedProperties))
		for _, p := range snap.ExcludedProperties {
			names = append(names, p.String())
		}
		parts = append(parts, "excluded fields: "+strings.Join(names, ", "))
	}
	if snap.Truncation >= 0 {
		parts = append(parts, fmt.Sprintf("truncation: %d", snap.Truncation))
	}
	if len(snap.Locales) > 0 {
		names := make([]string, 0, len(snap.Locales))
		for t, tag := range snap.Locales {
			names = append(names, t.String()+"="+tag)
		}
		sort.Strings(names)
		parts = append(parts, "locales: "+strings.Join(names, ", "))
	}
	if len(parts) == 0 {
		return "no rules"
	}
	return strings.Join(parts, "; ")
}

func sampleNames() string {
	names := make([]string, 0, len(samples))
	for _, s := range samples {
		names = append(names, s.name)
	}
	return strings.Join(names, ", ")
}
