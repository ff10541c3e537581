package domain

import (
	"bytes"
	"encoding/json"
	"filplus/pkg/serrors"
)

// AllocatorFile is the allocator JSON document kept in the registry under
// Allocators/<id>.json. Only the fields the service consumes are modelled;
// unknown fields are ignored.
type AllocatorFile struct {
	ApplicationNumber int64  `json:"application_number,omitempty"`
	Address           string `json:"address,omitempty"`
	Name              string `json:"name,omitempty"`
	Organization      string `json:"organization,omitempty"`
	MetapathwayType   string `json:"metapathway_type,omitempty"`
	AssociatedOrg     string `json:"associated_org,omitempty"`

	PathwayAddresses *AllocatorPathwayAddresses `json:"pathway_addresses,omitempty"`
	Application      *AllocatorApplication      `json:"application,omitempty"`
	POC              *AllocatorPOC              `json:"poc,omitempty"`
}

// AllocatorPathwayAddresses lists the multisig and its signers.
type AllocatorPathwayAddresses struct {
	Msig    string   `json:"msig,omitempty"`
	Signers []string `json:"signers,omitempty"`
}

// AllocatorApplication holds the application answers of the allocator file.
type AllocatorApplication struct {
	Allocations           []string `json:"allocations,omitempty"`
	TrancheSchedule       string   `json:"tranche_schedule,omitempty"`
	Audit                 []string `json:"audit,omitempty"`
	Distribution          []string `json:"distribution,omitempty"`
	RequiredSPs           string   `json:"required_sps,omitempty"`
	RequiredReplicas      string   `json:"required_replicas,omitempty"`
	Tooling               []string `json:"tooling,omitempty"`
	MaxDCClient           string   `json:"max_DC_client,omitempty"`
	GithubHandles         []string `json:"github_handles,omitempty"`
	AllocationBookkeeping string   `json:"allocation_bookkeeping,omitempty"`
}

// AllocatorPOC is the point of contact of the allocator.
type AllocatorPOC struct {
	Slack      string `json:"slack,omitempty"`
	GithubUser string `json:"github_user,omitempty"`
}

// GithubHandle returns the applicant's GitHub handle: the point of contact if
// present, otherwise the first listed handle.
func (f AllocatorFile) GithubHandle() string {
	if f.POC != nil && f.POC.GithubUser != "" {
		return f.POC.GithubUser
	}
	if f.Application != nil && len(f.Application.GithubHandles) > 0 {
		return f.Application.GithubHandles[0]
	}

	return ""
}

// TrancheSchedule returns the allocation tranche schedule, or "".
func (f AllocatorFile) TrancheSchedule() string {
	if f.Application == nil {
		return ""
	}

	return f.Application.TrancheSchedule
}

// ParseAllocatorFile decodes raw allocator JSON. Content that is not a JSON
// object fails with an serrors.ErrParse error.
func ParseAllocatorFile(content []byte) (*AllocatorFile, error) {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, serrors.With(serrors.ErrParse, "allocator file is not a JSON object")
	}

	var f AllocatorFile
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return nil, serrors.Wrap(serrors.ErrParse, err, "could not decode allocator file")
	}

	return &f, nil
}
