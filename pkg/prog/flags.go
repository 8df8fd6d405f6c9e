package prog

import "flag"

// FlagSet wraps a [flag.FlagSet] and keeps flags shared by more than one
// subprogram, so that each is only registered once.
type FlagSet struct {
	*flag.FlagSet
	json   *bool
	config *string
}

// JSON returns a pointer to the value of the -json flag, registering it if
// necessary.
func (fs *FlagSet) JSON() *bool {
	if fs.json == nil {
		var json bool
		fs.BoolVar(&json, "json", false,
			"Show the output from -buildinfo, -version or -inspect in JSON")
		fs.json = &json
	}
	return fs.json
}

// Config returns a pointer to the value of the -config flag, registering it
// if necessary.
func (fs *FlagSet) Config() *string {
	if fs.config == nil {
		var config string
		fs.StringVar(&config, "config", "", "Path to the YAML configuration file")
		fs.config = &config
	}
	return fs.config
}
