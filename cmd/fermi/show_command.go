package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"fermi/internal/settings"
)

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureSettings()
			if err != nil {
				return fmt.Errorf("load settings: %w", err)
			}

			out := cmd.OutOrStdout()
			caser := cases.Title(language.English)

			fmt.Fprintf(out, "Settings path: %s\n\n", ctx.settingsPath)
			for _, group := range settingsGroups(cfg) {
				fmt.Fprintln(out, caser.String(group.name))
				fmt.Fprintln(out, renderTable([]string{"Setting", "Value"}, group.rows, 1))
				fmt.Fprintln(out)
			}

			fmt.Fprintln(out, caser.String("external sources"))
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Strength", "Space", "Angle", "Energy"},
				sourceRows(cfg), 0, 1))
			return nil
		},
	}
}

type settingsGroup struct {
	name string
	rows [][]string
}

func settingsGroups(cfg *settings.Settings) []settingsGroup {
	run := [][]string{
		{"run mode", string(cfg.RunMode)},
		{"continuous energy", formatBool(cfg.RunCE)},
		{"photon transport", formatBool(cfg.PhotonTransport)},
		{"survival biasing", formatBool(cfg.SurvivalBiasing)},
		{"weight cutoff", formatFloat(cfg.WeightCutoff)},
		{"weight survive", formatFloat(cfg.WeightSurvive)},
		{"verbosity", strconv.Itoa(cfg.Verbosity)},
	}

	temperature := [][]string{
		{"method", string(cfg.TemperatureMethod)},
		{"default", formatFloat(cfg.TemperatureDefault)},
		{"tolerance", formatFloat(cfg.TemperatureTolerance)},
		{"multipole", formatBool(cfg.TemperatureMultipole)},
		{"range", formatRange(cfg.TemperatureRange)},
	}

	paths := [][]string{
		{"output", displayPath(cfg.PathOutput)},
		{"cross sections (fallback)", displayPath(cfg.ResolveCrossSections(""))},
		{"multipole library (fallback)", displayPath(cfg.ResolveMultipole(""))},
		{"statepoint", displayPath(cfg.PathStatepoint)},
		{"sourcepoint", displayPath(cfg.PathSourcepoint)},
	}

	cutoffs := make([][]string, 0, len(cfg.EnergyCutoff))
	for slot, label := range []string{"neutron", "photon", "electron", "positron"} {
		cutoffs = append(cutoffs, []string{label + " (eV)", formatFloat(cfg.EnergyCutoff[slot])})
	}

	return []settingsGroup{
		{name: "run", rows: run},
		{name: "temperature", rows: temperature},
		{name: "paths", rows: paths},
		{name: "energy cutoffs", rows: cutoffs},
	}
}

func sourceRows(cfg *settings.Settings) [][]string {
	rows := make([][]string, 0, len(cfg.ExternalSources))
	for i, dist := range cfg.ExternalSources {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			formatFloat(dist.Strength),
			fmt.Sprint(dist.Space),
			fmt.Sprint(dist.Angle),
			fmt.Sprint(dist.Energy),
		})
	}
	return rows
}

func formatBool(value bool) string {
	if value {
		return "on"
	}
	return "off"
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

func formatRange(pair [2]float64) string {
	if pair == ([2]float64{}) {
		return "unbounded"
	}
	return fmt.Sprintf("[%s, %s]", formatFloat(pair[0]), formatFloat(pair[1]))
}

func displayPath(path string) string {
	if strings.TrimSpace(path) == "" {
		return "(unset)"
	}
	return path
}
