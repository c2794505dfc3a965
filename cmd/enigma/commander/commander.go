package commander

import (
	"fmt"
	"os"

	"github.com/mwalzer/enigma/cmd/enigma/build"
)

type Globals struct {
	LogLevel  string `default:"info"    enum:"debug,info,warn,error" help:"Sets the minimum severity level for log messages"` // nolint:lll
	LogOutput string `default:"console" enum:"console,stderr,json"   help:"Specifies the format for log output"`
}

type VersionCmd struct{}

func (v *VersionCmd) Run() error {
	version := fmt.Sprintf("Version: %s (%s) built at %s", build.Version, build.Commit, build.Time)
	fmt.Println(version) // nolint: forbidigo
	os.Exit(0)
	return nil
}

type CLI struct {
	Globals

	Version VersionCmd `cmd:"" help:"Display the app version and exit"`
	Encode  EncodeCmd  `cmd:"" help:"Encode a message with the given machine settings"`
	Serve   ServeCmd   `cmd:"" help:"Start the encoding API server"`
}
