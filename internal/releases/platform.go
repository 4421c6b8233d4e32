package releases

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
)

// Platform is a target for which distribution archives are published.
type Platform int

const (
	LinuxMuslX86_64 Platform = iota
	LinuxMuslAarch64
	LinuxMuslArm
	LinuxMuslArmV7
	MacOSX86_64
	MacOSAarch64
	WindowsX86_64
)

var platformTriples = [...]string{
	LinuxMuslX86_64:  "x86_64-unknown-linux-musl",
	LinuxMuslAarch64: "aarch64-unknown-linux-musl",
	LinuxMuslArm:     "arm-unknown-linux-musleabi",
	LinuxMuslArmV7:   "armv7-unknown-linux-musleabihf",
	MacOSX86_64:      "x86_64-apple-darwin",
	MacOSAarch64:     "aarch64-apple-darwin",
	WindowsX86_64:    "x86_64-pc-windows-msvc",
}

// Triple returns the target triple used verbatim in distribution URLs.
func (p Platform) Triple() string {
	if p < 0 || int(p) >= len(platformTriples) {
		return fmt.Sprintf("Platform(%d)", int(p))
	}
	return platformTriples[p]
}

func (p Platform) String() string { return p.Triple() }

// ArchiveFormat returns the format archives for p are conventionally
// published in: zip on Windows, tar.gz everywhere else.
func (p Platform) ArchiveFormat() ArchiveFormat {
	if p == WindowsX86_64 {
		return Zip
	}
	return TarGz
}

// AllPlatforms lists every supported platform.
func AllPlatforms() []Platform {
	ps := make([]Platform, len(platformTriples))
	for i := range platformTriples {
		ps[i] = Platform(i)
	}
	return ps
}

// ParsePlatform maps a target triple back to its Platform.
func ParsePlatform(triple string) (Platform, error) {
	t := strings.TrimSpace(triple)
	for i, known := range platformTriples {
		if known == t {
			return Platform(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown target triple %q", ErrPlatformNotSupported, triple)
}

// kernelArch is swapped out in tests.
var kernelArch = host.KernelArch

// DetectPlatform maps the running host to a supported Platform.
//
// The OS comes from runtime.GOOS. The CPU comes from the kernel, which unlike
// GOARCH tells ARMv7 apart from older ARM cores; GOARCH is used when the
// kernel cannot be queried.
func DetectPlatform() (Platform, error) {
	arch, err := kernelArch()
	if err != nil || arch == "" {
		arch = runtime.GOARCH
	}
	return platformFor(runtime.GOOS, arch)
}

// platformFor accepts both Go (amd64, arm64) and kernel (x86_64, aarch64,
// armv7l) architecture names.
func platformFor(goos, arch string) (Platform, error) {
	cpu := normalizeArch(arch)
	switch goos {
	case "linux":
		switch cpu {
		case "x86_64":
			return LinuxMuslX86_64, nil
		case "armv7":
			return LinuxMuslArmV7, nil
		case "arm":
			return LinuxMuslArm, nil
		case "aarch64":
			return LinuxMuslAarch64, nil
		default:
			return 0, fmt.Errorf("%w: no binaries for the linux/%s combination", ErrPlatformNotSupported, arch)
		}
	case "windows":
		if cpu != "x86_64" {
			return 0, fmt.Errorf("%w: only x86_64 binaries are available for windows", ErrPlatformNotSupported)
		}
		return WindowsX86_64, nil
	case "darwin":
		if cpu == "aarch64" {
			return MacOSAarch64, nil
		}
		return MacOSX86_64, nil
	default:
		return 0, fmt.Errorf("%w: %s is not currently supported", ErrPlatformNotSupported, goos)
	}
}

func normalizeArch(arch string) string {
	a := strings.ToLower(strings.TrimSpace(arch))
	switch {
	case a == "amd64" || a == "x86_64" || a == "x64":
		return "x86_64"
	case a == "arm64" || a == "aarch64":
		return "aarch64"
	case strings.HasPrefix(a, "armv7"):
		return "armv7"
	case a == "arm" || strings.HasPrefix(a, "armv5") || strings.HasPrefix(a, "armv6"):
		return "arm"
	default:
		return a
	}
}
