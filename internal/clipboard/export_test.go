package clipboard

import "os/exec"

// NewTestReader builds a CommandReader with injected platform probes
func NewTestReader(goos string, available []string, wsl bool) *CommandReader {
	r := NewCommandReader(nil)
	r.goos = goos
	r.isWSL = func() bool { return wsl }
	r.lookPath = func(name string) (string, error) {
		for _, a := range available {
			if a == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", exec.ErrNotFound
	}
	return r
}

// Detect exposes platform detection
func (r *CommandReader) Detect() []string {
	return r.detect()
}
