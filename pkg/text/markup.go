package text

import (
	"strconv"
	"strings"
)

const maxHeadingLevel = 6

// Heading shifts a heading tag by modifier levels.
//
// h-tags move down (positive) or up (negative) and turn into "p" beyond h6.
// A "p" with a negative modifier is promoted to a heading counted from h6.
// Other tags and a zero modifier return the tag unchanged.
//
//	Heading("h2", 1)  // "h3"
//	Heading("h6", 1)  // "p"
//	Heading("p", -2)  // "h5"
func Heading(tag string, modifier int) string {
	if modifier == 0 {
		return tag
	}
	tag = strings.ToLower(tag)

	if tag == "p" {
		if modifier > 0 {
			return "p"
		}
		level := min(maxHeadingLevel-abs(modifier)+1, maxHeadingLevel)
		return "h" + strconv.Itoa(max(level, 1))
	}

	if !headingRegex.MatchString(tag) {
		return tag
	}

	level := int(tag[1]-'0') + modifier
	if level > maxHeadingLevel {
		return "p"
	}
	return "h" + strconv.Itoa(max(level, 1))
}

// MenuFilterToQuery turns a comma separated list of node types into
// instanceof selectors. Types prefixed with "!" are negated:
//
//	MenuFilterToQuery("Vendor:Page,!Vendor:Shortcut")
//	// "[instanceof Vendor:Page][!instanceof Vendor:Shortcut]"
func MenuFilterToQuery(filter string) string {
	var b strings.Builder
	for part := range strings.SplitSeq(filter, ",") {
		part = strings.TrimSpace(part)
		if part == "" || part == "!" {
			continue
		}
		if nodeType, negated := strings.CutPrefix(part, "!"); negated {
			b.WriteString("[!instanceof " + strings.TrimSpace(nodeType) + "]")
			continue
		}
		b.WriteString("[instanceof " + part + "]")
	}
	return b.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
