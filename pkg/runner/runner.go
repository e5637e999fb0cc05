package runner

import "os"

// Hostname and Pwd describe the process environment at startup.
var (
	Hostname = hostname()
	Pwd      = workdir()
)

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}

func workdir() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}
