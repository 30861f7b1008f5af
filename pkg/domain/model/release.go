package model

// ReleaseRequest contains the information needed to create a release.
type ReleaseRequest struct {
	Repo         RepoRef // Repository the release is created in
	Tag          Tag     // Tag and release name
	Body         string  // Release description
	TargetBranch string  // Commitish the tag is created from
}

// Release represents a release created on GitHub.
type Release struct {
	ID      int64  // Release ID assigned by GitHub
	TagName Tag    // Tag the release points at
	Name    string // Release name
	HTMLURL string // Public release page URL
}
