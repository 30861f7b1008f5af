package model

// SyncRequest is the input of one sync run.
type SyncRequest struct {
	TargetRepo RepoRef // Upstream repository whose tag is mirrored
	LocalRepo  RepoRef // Downstream repository receiving the release
	BaseBranch string  // Commitish new release tags are cut from
}

// SyncOutcome is the terminal state of a successful sync run.
type SyncOutcome string

const (
	OutcomeUpToDate SyncOutcome = "up_to_date"
	OutcomeReleased SyncOutcome = "released"
)

// SyncResult describes what a sync run observed and did.
type SyncResult struct {
	Outcome   SyncOutcome
	TargetTag Tag
	LocalTag  Tag
	Release   *Release // Set only when Outcome is OutcomeReleased
}
