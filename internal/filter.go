package internal

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// filterRule pairs a query predicate with a working-set transform. Rules are
// evaluated in declaration order and compose by intersection: every matching
// rule narrows (or reorders) the set the previous rules produced.
type filterRule struct {
	name  string
	match func(query string) bool
	apply func(query string, working []ClientNotification) []ClientNotification
}

var (
	moreThanMillionRe = regexp.MustCompile(`more than (\d+) million`)
	moreThanFlaggedRe = regexp.MustCompile(`more than (\d+) flagged`)
)

// filterRules is the full ordered rule table. Sort rules come last; when
// several match, the later one wins because it re-sorts the same slice.
var filterRules = []filterRule{
	riskLevelRule(RiskHigh, "high-risk", "high risk"),
	riskLevelRule(RiskMedium, "medium-risk", "medium risk"),
	riskLevelRule(RiskLow, "low-risk", "low risk"),

	clientRule("marcus", []string{"marcus rodriguez", "marcus"}),
	clientRule("sarah", []string{"sarah chen", "sarah"}),
	clientRule("ahmed", []string{"ahmed", "al-rashid"}),

	countryRule("panama"),
	countryRule("singapore"),
	countryRule("uae"),
	countryRule("russia"),
	countryRule("united states"),

	alertRule("structuring", []string{"structuring"}, []string{"structuring"}),
	alertRule("geographic", []string{"geographic", "geographical"}, []string{"geographic"}),
	alertRule("velocity", []string{"velocity", "unusual"}, []string{"velocity", "unusual"}),
	alertRule("pep", []string{"pep"}, []string{"pep"}),

	{
		name: "amount-threshold",
		match: func(q string) bool {
			return strings.Contains(q, "more than") && strings.Contains(q, "million")
		},
		apply: func(q string, working []ClientNotification) []ClientNotification {
			m := moreThanMillionRe.FindStringSubmatch(q)
			if m == nil {
				return working
			}
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return working
			}
			threshold := float64(n) * 1000000
			return keep(working, func(c ClientNotification) bool {
				return c.TotalAmount > threshold
			})
		},
	},
	{
		name: "flagged-threshold",
		match: func(q string) bool {
			return strings.Contains(q, "flagged transactions")
		},
		apply: func(q string, working []ClientNotification) []ClientNotification {
			m := moreThanFlaggedRe.FindStringSubmatch(q)
			if m == nil {
				return working
			}
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return working
			}
			return keep(working, func(c ClientNotification) bool {
				return c.FlaggedTransactions > n
			})
		},
	},

	{
		name: "sort-amount-desc",
		match: func(q string) bool {
			return strings.Contains(q, "sort by amount") && strings.Contains(q, "descending")
		},
		apply: func(_ string, working []ClientNotification) []ClientNotification {
			sort.SliceStable(working, func(i, j int) bool {
				return working[i].TotalAmount > working[j].TotalAmount
			})
			return working
		},
	},
	{
		name: "sort-amount-asc",
		match: func(q string) bool {
			return strings.Contains(q, "sort by amount") && strings.Contains(q, "ascending")
		},
		apply: func(_ string, working []ClientNotification) []ClientNotification {
			sort.SliceStable(working, func(i, j int) bool {
				return working[i].TotalAmount < working[j].TotalAmount
			})
			return working
		},
	},
	{
		name: "sort-risk",
		match: func(q string) bool { return strings.Contains(q, "sort by risk") },
		apply: func(_ string, working []ClientNotification) []ClientNotification {
			sort.SliceStable(working, func(i, j int) bool {
				return working[i].RiskLevel.Rank() > working[j].RiskLevel.Rank()
			})
			return working
		},
	},
	{
		name: "sort-name",
		match: func(q string) bool { return strings.Contains(q, "sort by name") },
		apply: func(_ string, working []ClientNotification) []ClientNotification {
			sort.SliceStable(working, func(i, j int) bool {
				return strings.ToLower(working[i].ClientName) < strings.ToLower(working[j].ClientName)
			})
			return working
		},
	},
}

// ApplyFilter maps a free-text query onto the notification list by folding
// the rule table over a copy of source. The result is always a subsequence or
// reordering of source; a query that matches no rule returns source unchanged.
func ApplyFilter(query string, source []ClientNotification) []ClientNotification {
	q := strings.ToLower(query)

	working := make([]ClientNotification, len(source))
	copy(working, source)

	for _, rule := range filterRules {
		if rule.match(q) {
			working = rule.apply(q, working)
		}
	}
	return working
}

func keep(in []ClientNotification, pred func(ClientNotification) bool) []ClientNotification {
	out := make([]ClientNotification, 0, len(in))
	for _, c := range in {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}

func containsAny(q string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

func riskLevelRule(level RiskLevel, keywords ...string) filterRule {
	return filterRule{
		name:  "risk-" + string(level),
		match: func(q string) bool { return containsAny(q, keywords) },
		apply: func(_ string, working []ClientNotification) []ClientNotification {
			return keep(working, func(c ClientNotification) bool {
				return c.RiskLevel == level
			})
		},
	}
}

func clientRule(nameSubstring string, keywords []string) filterRule {
	return filterRule{
		name:  "client-" + nameSubstring,
		match: func(q string) bool { return containsAny(q, keywords) },
		apply: func(_ string, working []ClientNotification) []ClientNotification {
			return keep(working, func(c ClientNotification) bool {
				return strings.Contains(strings.ToLower(c.ClientName), nameSubstring)
			})
		},
	}
}

func countryRule(country string) filterRule {
	return filterRule{
		name:  "country-" + country,
		match: func(q string) bool { return strings.Contains(q, country) },
		apply: func(_ string, working []ClientNotification) []ClientNotification {
			return keep(working, func(c ClientNotification) bool {
				return strings.Contains(strings.ToLower(c.Country), country)
			})
		},
	}
}

func alertRule(name string, keywords, alertSubstrings []string) filterRule {
	return filterRule{
		name:  "alert-" + name,
		match: func(q string) bool { return containsAny(q, keywords) },
		apply: func(_ string, working []ClientNotification) []ClientNotification {
			return keep(working, func(c ClientNotification) bool {
				return containsAny(strings.ToLower(c.AlertType), alertSubstrings)
			})
		},
	}
}
