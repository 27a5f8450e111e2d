package multifile

var (
	VERSION = "0.3.0"

	// GITCommit overwritten automatically by the build
	GITCOMMIT = "HEAD"
)

// User-Agent sent with HTTP requests unless the caller provides one
func UserAgent() string {
	return "multifile/" + VERSION + " (" + GITCOMMIT + ")"
}
