package psychro

import (
	"fmt"
	"strings"
)

// Version of the evaluator surface.
const Version = "1.1"

var descriptions = [NumProperties]string{
	"Dry Bulb",
	"Relative Humidity",
	"Humidity Ratio",
	"Enthalpy",
	"Specific Volume",
	"Wet Bulb",
	"Dew Point",
}

var englishSynonyms = [NumProperties]string{"tdb", "rh", "w", "h", "v", "twb", "tdp"}

// Help returns the quick usage guide.
func Help() string {
	var sb strings.Builder
	sb.WriteString("PSICRO GUIDE\n")
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	sb.WriteString("MAIN FUNCTION:\n\n")
	sb.WriteString("\tpsicro eval -p1 P1 -v1 V1 -p2 P2 -v2 V2 -target TARGET [-unit SI|IP]\n\n")
	sb.WriteString("Ex. humidity ratio: -p1 t -v1 26 -p2 ur -v2 50 -target x          = 0.010496\n")
	sb.WriteString("Ex. humidity ratio: -p1 tdb -v1 78.8 -p2 rh -v2 50 -target w -unit ip = 0.010496\n\n")
	sb.WriteString("PARAMETERS:\n\n")
	sb.WriteString("- TARGET:\tproperty to calculate, several separated by ',' ';' or ' ',\n")
	sb.WriteString("\t\tor 'all' for every property not given\n")
	sb.WriteString("\t\tunknown names in the list are skipped; a list without any\n")
	sb.WriteString("\t\tknown name is an error (no valid target property)\n")
	sb.WriteString("- P1, P2:\tsymbols of the known properties\n")
	sb.WriteString("- V1, V2:\tvalues, or ranges of values, of the known properties\n")
	sb.WriteString("- UNIT:\t\t'SI' (metric, default) or 'IP' (imperial/ASHRAE)\n\n")
	sb.WriteString("VARIABLE SYMBOLS:\n\n")
	for _, p := range Properties() {
		sb.WriteString(fmt.Sprintf("%s / (%s)\t: %s\n", p, englishSynonyms[p], descriptions[p]))
	}
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	sb.WriteString("NOTE: evaluation is vectorial and accepts ranges as input.\n")
	return sb.String()
}

// UnitsInfo returns the SI/IP unit table.
func UnitsInfo() string {
	var sb strings.Builder
	sb.WriteString("MEASUREMENT UNITS\n")
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	sb.WriteString("Var\tDescription\t\tSI\tIP\n")
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	for _, p := range Properties() {
		sb.WriteString(fmt.Sprintf("%s/%s\t%-20s\t%s\t%s\n",
			p, englishSynonyms[p], descriptions[p], UnitLabel(p, SI), UnitLabel(p, IP)))
	}
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	sb.WriteString("Note:\n")
	sb.WriteString("- IP Enthalpy ref: 0 BTU/lb @ 0°F (ASHRAE)\n")
	sb.WriteString("- SI Enthalpy ref: 0 kJ/kg @ 0°C\n")
	return sb.String()
}

// Info returns version information.
func Info() string {
	return "psicro v" + Version + "\n" +
		"Logic: Multi-unit (SI/IP) - ASHRAE Offset Calibrated\n" +
		"Equations: ASHRAE Fundamentals Handbook 1997\n"
}
