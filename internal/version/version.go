package version

import (
	"fmt"
	"io"
	"os"

	"github.com/alvarorichard/mediapoisk/internal/storage"
)

// Version is overridden at build time with -ldflags "-X .../version.Version=..."
var Version = "0.4.0"

func HasVersionArg() bool {
	if len(os.Args) > 1 {
		arg := os.Args[1]
		return arg == "--version" || arg == "-version" || arg == "-v" || arg == "version"
	}
	return false
}

// ShowVersion prints the version and whether local storage is compiled in
func ShowVersion(w io.Writer) {
	fmt.Fprintf(w, "MediaPoisk v%s", Version)
	if storage.Available() {
		fmt.Fprintln(w, " (with SQLite storage)")
	} else {
		fmt.Fprintln(w, " (without SQLite storage)")
	}
}
