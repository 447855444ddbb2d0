package argp

import (
	"fmt"
	"os"
	"strings"

	"github.com/amterp/color"
)

// dumpColors holds the styles of one dump. Each dump gets its own, so
// ARGP_COLOR is honoured without touching color.NoColor.
type dumpColors struct {
	greenBold func(a ...interface{}) string
	cyan      func(a ...interface{}) string
	bold      func(a ...interface{}) string
}

func newDumpColors() dumpColors {
	styles := []*color.Color{
		color.New(color.FgGreen, color.Bold),
		color.New(color.FgCyan),
		color.New(color.Bold),
	}
	switch strings.ToLower(strings.TrimSpace(os.Getenv("ARGP_COLOR"))) {
	case "never":
		for _, c := range styles {
			c.DisableColor()
		}
	case "always":
		for _, c := range styles {
			c.EnableColor()
		}
	default:
		// "auto", unset or invalid: let amterp/color decide based on the tty
	}
	return dumpColors{
		greenBold: styles[0].SprintFunc(),
		cyan:      styles[1].SprintFunc(),
		bold:      styles[2].SprintFunc(),
	}
}

// GenerateDump describes the parser configuration and the tokens it would
// parse. It is what Parse writes when WithDump(true) is given.
func (p *Parser) GenerateDump(tokens []string, opts ...ParseOpt) string {
	c := newDumpColors()

	var sb strings.Builder
	sb.WriteString(c.greenBold("Argp Parser Dump") + "\n")
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")

	sb.WriteString(p.generateParseConfigSection(c, opts...))
	sb.WriteString(p.generateParserInfoSection(c))
	sb.WriteString(p.generateTokensSection(c, tokens))
	sb.WriteString(p.generateParamsSection(c))
	sb.WriteString(p.generateEnvironmentSection(c))

	return sb.String()
}

func (p *Parser) generateParseConfigSection(c dumpColors, opts ...ParseOpt) string {
	var sb strings.Builder
	cfg := newParseCfg(opts)

	sb.WriteString(c.greenBold("Parse Configuration:") + "\n")
	sb.WriteString(fmt.Sprintf("  Collect Errors: %s\n", c.bold(fmt.Sprintf("%t", cfg.collectErrors))))
	sb.WriteString(fmt.Sprintf("  Dump Enabled: %s\n", c.bold(fmt.Sprintf("%t", cfg.dump))))
	sb.WriteString(fmt.Sprintf("  Exit Code: %s\n", c.bold(fmt.Sprintf("%d", cfg.exitCode))))
	sb.WriteString("\n")

	return sb.String()
}

func (p *Parser) generateParserInfoSection(c dumpColors) string {
	var sb strings.Builder

	sb.WriteString(c.greenBold("Parser Information:") + "\n")
	if p.name != "" {
		sb.WriteString(fmt.Sprintf("  Name: %s\n", c.bold(p.name)))
	} else {
		sb.WriteString(fmt.Sprintf("  Name: %s\n", c.cyan("<not set>")))
	}
	sb.WriteString(fmt.Sprintf("  Prefix: %s\n", c.bold(fmt.Sprintf("%q", p.prefix))))
	sb.WriteString(fmt.Sprintf("  Positional Arity: %s\n", c.bold(p.arity.String())))
	sb.WriteString(fmt.Sprintf("  Completion Enabled: %s\n", c.bold(fmt.Sprintf("%t", p.completionEnabled))))
	sb.WriteString("\n")

	return sb.String()
}

func (p *Parser) generateTokensSection(c dumpColors, tokens []string) string {
	var sb strings.Builder
	sb.WriteString(c.greenBold("Tokens to Parse:") + "\n")

	if len(tokens) == 0 {
		sb.WriteString("  " + c.cyan("<no tokens>") + "\n")
	} else {
		for i, token := range tokens {
			kind := "value"
			if p.isParameter(token) {
				kind = "parameter"
			}
			sb.WriteString(fmt.Sprintf("  [%d]: %s %s\n", i, c.bold(fmt.Sprintf("%q", token)), c.cyan(kind)))
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

func (p *Parser) generateParamsSection(c dumpColors) string {
	var sb strings.Builder

	sb.WriteString(c.greenBold("Parameters:") + "\n")
	sb.WriteString(fmt.Sprintf("  Total Parameters: %d\n", len(p.params)))
	if len(p.params) > 0 {
		sb.WriteString("\n")
		for i, param := range p.params {
			sb.WriteString(fmt.Sprintf("  [%d] %s\n", i, formatParamForDump(c, param)))
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

func formatParamForDump(c dumpColors, param Param) string {
	var parts []string
	parts = append(parts, c.bold(param.name))
	if len(param.aliases) > 0 {
		parts = append(parts, fmt.Sprintf("(%s)", strings.Join(param.aliases, ", ")))
	}
	parts = append(parts, fmt.Sprintf("arity:%s", param.arity))
	if param.usage != "" {
		parts = append(parts, fmt.Sprintf("usage:%q", param.usage))
	}
	return strings.Join(parts, " ")
}

func (p *Parser) generateEnvironmentSection(c dumpColors) string {
	var sb strings.Builder
	sb.WriteString(c.greenBold("Environment:") + "\n")

	colorEnv := os.Getenv("ARGP_COLOR")
	if colorEnv != "" {
		sb.WriteString(fmt.Sprintf("  ARGP_COLOR: %s\n", c.bold(colorEnv)))
	} else {
		sb.WriteString(fmt.Sprintf("  ARGP_COLOR: %s\n", c.cyan("<not set>")))
	}

	return sb.String()
}
