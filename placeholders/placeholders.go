// Package placeholders substitutes submission values into captions and settings.
//
// Supported tokens:
//
//	[#alias]      values of the record field with that alias, joined by ", "
//	[$ip]         submitting IP address
//	[$culture]    request culture
//	[$pageId]     ID of the page the form was submitted on
//	[$memberKey]  key of the logged-in member
//	[$recordId]   unique ID of the record
//
// Unknown tokens are replaced with an empty string.
package placeholders

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jpkuehn/S3.Forms/models"
)

var tokenPattern = regexp.MustCompile(`\[([#$])([A-Za-z0-9_.\-]+)\]`)

// Replace substitutes every token in text with values from the record
func Replace(text string, record *models.Record) string {
	if record == nil || !strings.Contains(text, "[") {
		return text
	}

	return tokenPattern.ReplaceAllStringFunc(text, func(token string) string {
		m := tokenPattern.FindStringSubmatch(token)
		switch m[1] {
		case "#":
			if f, ok := record.GetRecordFieldByAlias(m[2]); ok {
				return f.ValuesAsString()
			}
			return ""
		default:
			return recordValue(record, m[2])
		}
	})
}

func recordValue(record *models.Record, name string) string {
	switch strings.ToLower(name) {
	case "ip":
		return record.IP
	case "culture":
		return record.Culture
	case "pageid":
		return strconv.Itoa(record.PageID)
	case "memberkey":
		return record.MemberKey
	case "recordid":
		return record.UniqueID.String()
	}
	return ""
}
