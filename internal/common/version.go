package common

// Version is reported by the -verbose banner and by --version.
const Version = "1.2.0"

// Banner returns the version line printed on the first -debug switch.
func Banner(mode string) string {
	return "jpegcli " + mode + ", version " + Version
}
