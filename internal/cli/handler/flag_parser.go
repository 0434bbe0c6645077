package handler

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/myday/internal/cli"
	"github.com/thenoetrevino/myday/internal/models"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd       *cobra.Command
	formatter *cli.OutputFormatter
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command, formatter *cli.OutputFormatter) *FlagParser {
	return &FlagParser{
		cmd:       cmd,
		formatter: formatter,
	}
}

// ParseTaskIDArg parses the positional task ID, reporting a usage error
func (p *FlagParser) ParseTaskIDArg(args []string) (int, error) {
	if len(args) == 0 {
		return 0, p.formatter.Fail(cli.ExitUsage, "MISSING_TASK_ID",
			fmt.Errorf("task ID is required"), "Usage: myday "+p.cmd.Name()+" <id>")
	}
	id, err := cli.ParseTaskID(args[0])
	if err != nil {
		return 0, p.formatter.Fail(cli.ExitUsage, "INVALID_TASK_ID", err, "Usage: myday "+p.cmd.Name()+" <id>")
	}
	return id, nil
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%s is required", flagName)
	}
	return value, nil
}

// ParsePriority extracts a priority flag and checks its range
func (p *FlagParser) ParsePriority(flagName string) (int, error) {
	value, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if value < models.MinPriority || value > models.MaxPriority {
		return 0, fmt.Errorf("%s must be between %d and %d", flagName, models.MinPriority, models.MaxPriority)
	}
	return value, nil
}

// ParseColor extracts and validates a color flag
func (p *FlagParser) ParseColor(flagName string) (string, error) {
	color, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if err := cli.ValidateColorHex(color); err != nil {
		return "", err
	}
	return color, nil
}

// ParseStatus extracts a status flag, accepting the aliases
func (p *FlagParser) ParseStatus(flagName string) (models.Status, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	return cli.ParseStatus(value)
}

// OutputFormats extracts JSON and Quiet output flags
func (p *FlagParser) OutputFormats() (jsonOutput bool, quietMode bool, err error) {
	jsonOutput, err = p.cmd.Flags().GetBool("json")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse json flag: %w", err)
	}

	quietMode, err = p.cmd.Flags().GetBool("quiet")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse quiet flag: %w", err)
	}

	return jsonOutput, quietMode, nil
}
