package consts

// Recommended permissions for different types of files and directories ytd might create.
const (
	// ** World Readable **
	PermsGenericDir = 0o755

	// Media files - world readable
	PermsArtifactFile = 0o644

	// Other files
	PermsLogFile = 0o644

	// ** Private **
	// Sensitive files - owner only
	PermsCredentialsDir = 0o700 // Private token directory
	PermsTokenFile      = 0o600 // OAuth tokens
	PermsCookieFile     = 0o600 // Exported browser cookies
	PermsSettingsFile   = 0o600 // Saved bucket name etc.
)
