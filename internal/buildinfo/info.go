package buildinfo

var (
	// Version is the release tag, stamped with -ldflags "-X .../buildinfo.Version=...".
	Version = "dev"
	// Commit is the source revision, stamped via ldflags.
	Commit = "none"
	// Date is the build timestamp, stamped via ldflags.
	Date = "unknown"
)
