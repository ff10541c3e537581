package domain

import (
	"maps"
	"slices"
	"strings"
	"time"
)

// IssueDetails is the read projection of a GitHub application issue. Rows are
// keyed by the GitHub issue id and linked to an application once one is
// created for the issue.
type IssueDetails struct {
	GithubIssueID     int64         `json:"githubIssueId"`
	GithubIssueNumber int           `json:"githubIssueNumber"`
	ApplicationID     ApplicationID `json:"applicationId,omitempty"`

	Title   string `json:"title"`
	Creator string `json:"creator"`
	State   string `json:"state"`

	Name    string            `json:"name"`
	Address string            `json:"address"`
	Status  ApplicationStatus `json:"status,omitempty"`

	IssueCreatedAt time.Time `json:"issueCreatedAt"`
	IssueClosedAt  time.Time `json:"issueClosedAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// noResponse is what GitHub issue forms render for optional fields left empty.
const noResponse = "_No response_"

// ParseIssueForm extracts the answers of a GitHub issue form body. Each answer
// is rendered as a "### <label>" heading followed by the value. Keys are
// lower-cased labels; empty answers are omitted.
func ParseIssueForm(body string) map[string]string {
	out := map[string]string{}

	var (
		label string
		value []string
	)
	flush := func() {
		if label == "" {
			return
		}
		v := strings.TrimSpace(strings.Join(value, "\n"))
		if v != "" && v != noResponse {
			out[label] = v
		}
	}

	for _, line := range strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n") {
		if heading, ok := strings.CutPrefix(line, "### "); ok {
			flush()
			label = strings.ToLower(strings.TrimSpace(heading))
			value = value[:0]

			continue
		}
		if label != "" {
			value = append(value, line)
		}
	}
	flush()

	return out
}

// IssueApplicant returns the applicant name and on-chain address answered in
// an issue form. Missing answers are returned as empty strings.
func IssueApplicant(form map[string]string) (name, address string) {
	for _, key := range []string{"allocator name", "name", "organization name"} {
		if v, ok := form[key]; ok {
			name = v

			break
		}
	}
	for _, key := range slices.Sorted(maps.Keys(form)) {
		if strings.Contains(key, "address") {
			address = form[key]

			break
		}
	}

	return name, address
}
