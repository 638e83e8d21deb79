package build

import "fmt"

var (
	ProjectVersion string = "unknown"
	GitRef         string = "unknown"
	BuildDate      string = "unknown"
	LongVersion    string = fmt.Sprintf("%s (%s - %s)", ProjectVersion, GitRef, BuildDate)
)
