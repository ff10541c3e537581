package domain_test

import (
	"filplus/pkg/domain"
	"filplus/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplicationStatus_CanTransition(t *testing.T) {
	tests := []struct {
		from, to domain.ApplicationStatus
		want     bool
	}{
		{domain.ApplicationStatusKYC, domain.ApplicationStatusGovernanceReview, true},
		{domain.ApplicationStatusKYC, domain.ApplicationStatusRejected, true},
		{domain.ApplicationStatusGovernanceReview, domain.ApplicationStatusRKHApproval, true},
		{domain.ApplicationStatusGovernanceReview, domain.ApplicationStatusMetaAllocatorApproval, true},
		{domain.ApplicationStatusRKHApproval, domain.ApplicationStatusApproved, true},
		{domain.ApplicationStatusRKHApproval, domain.ApplicationStatusMetaAllocatorApproval, false},
		{domain.ApplicationStatusGovernanceReview, domain.ApplicationStatusKYC, false},
		{domain.ApplicationStatusKYC, domain.ApplicationStatusKYC, false},
		{domain.ApplicationStatusApproved, domain.ApplicationStatusRejected, false},
		{domain.ApplicationStatusRejected, domain.ApplicationStatusApproved, false},
		{domain.ApplicationStatusKYC, domain.ApplicationStatus("UNKNOWN"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			require.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestApplicationStatus_Terminal(t *testing.T) {
	require.True(t, domain.ApplicationStatusApproved.Terminal())
	require.True(t, domain.ApplicationStatusRejected.Terminal())
	require.False(t, domain.ApplicationStatusKYC.Terminal())
}

func TestParseAllocatorFile(t *testing.T) {
	f, err := domain.ParseAllocatorFile([]byte(`{
		"application_number": 1042,
		"name": "X",
		"organization": "Org",
		"address": "f1abc",
		"unknown_field": true,
		"application": {"tranche_schedule": "5%/10%", "github_handles": ["first", "second"]},
		"poc": {"slack": "x"}
	}`))
	require.NoError(t, err)
	require.Equal(t, int64(1042), f.ApplicationNumber)
	require.Equal(t, "X", f.Name)
	require.Equal(t, "5%/10%", f.TrancheSchedule())
	require.Equal(t, "first", f.GithubHandle(), "falls back to the first handle without a POC user")

	f.POC.GithubUser = "poc-user"
	require.Equal(t, "poc-user", f.GithubHandle())
}

func TestParseAllocatorFile_Invalid(t *testing.T) {
	for _, content := range []string{"", "   ", "[]", `"name"`, `{"name": 5}`, `{"name":`} {
		_, err := domain.ParseAllocatorFile([]byte(content))
		require.ErrorIs(t, err, serrors.ErrParse, "content %q", content)
	}
}

func TestParseIssueForm(t *testing.T) {
	body := "### Allocator Name\r\n\r\nAcme Storage\r\n\r\n" +
		"### Website\n\n_No response_\n\n" +
		"### On-chain address for DC Allocation\n\nf1xyz\n"

	form := domain.ParseIssueForm(body)
	require.Equal(t, map[string]string{
		"allocator name":                     "Acme Storage",
		"on-chain address for dc allocation": "f1xyz",
	}, form)

	name, address := domain.IssueApplicant(form)
	require.Equal(t, "Acme Storage", name)
	require.Equal(t, "f1xyz", address)
}

func TestIssueApplicant_Missing(t *testing.T) {
	name, address := domain.IssueApplicant(domain.ParseIssueForm("free text without headings"))
	require.Empty(t, name)
	require.Empty(t, address)
}
