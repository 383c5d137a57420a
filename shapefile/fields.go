package shapefile

import (
	"strconv"
	"strings"
	"time"

	shp "github.com/jonas-p/go-shp"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/charmap"
)

// dBASE stores dates as YYYYMMDD.
const dbfDateLayout = "20060102"

type textDecoder func(string) string

// decoderFor builds a text decoder from the group's .cpg buffer. UTF-8 and
// unknown code pages pass text through unchanged.
func decoderFor(cpg []byte) textDecoder {
	name := strings.ToUpper(strings.TrimSpace(string(cpg)))

	var cm *charmap.Charmap
	switch name {
	case "", "UTF-8", "UTF8", "65001":
		return nil
	case "ISO-8859-1", "ISO 8859-1", "ISO8859-1", "LATIN1", "88591":
		cm = charmap.ISO8859_1
	case "WINDOWS-1252", "CP1252", "1252", "ANSI 1252":
		cm = charmap.Windows1252
	case "CP437", "437":
		cm = charmap.CodePage437
	case "CP850", "850":
		cm = charmap.CodePage850
	default:
		log.Warn().Str("codepage", name).Msg("Unknown code page, treating attribute text as UTF-8")
		return nil
	}

	decoder := cm.NewDecoder()
	return func(s string) string {
		decoded, err := decoder.String(s)
		if err != nil {
			return s
		}
		return decoded
	}
}

// fieldValue converts one raw attribute to a typed value according to its
// dBASE field descriptor. Empty attributes yield nil and are dropped.
func fieldValue(field shp.Field, raw string, decode textDecoder) interface{} {
	raw = strings.TrimSpace(strings.Trim(raw, "\x00"))
	if raw == "" {
		return nil
	}

	switch field.Fieldtype {
	case 'N': // numeric; integral unless a decimal point is present
		if !strings.ContainsAny(raw, ".eE") {
			if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
				return n
			}
		}
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}

	case 'F': // float
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}

	case 'L': // logical
		switch raw {
		case "T", "t", "Y", "y":
			return true
		case "F", "f", "N", "n":
			return false
		}

	case 'D': // date
		if t, err := time.Parse(dbfDateLayout, raw); err == nil {
			return t
		}
	}

	// character fields and anything unparseable stay textual
	if decode != nil {
		return decode(raw)
	}
	return raw
}
