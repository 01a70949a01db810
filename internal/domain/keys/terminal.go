package keys

// Cookie sources accepted by the cookie-source flag, besides a file path.
const (
	CookieSourceNone    string = ""
	CookieSourceBrowser string = "browser"
)

// Auth targets accepted by "auth <target>".
const (
	AuthTargetYouTube string = "youtube"
	AuthTargetGCS     string = "gcs"
	AuthTargetAll     string = "all"
)

// SelectAll selects every video artifact in a backup prompt.
const SelectAll string = "all"
