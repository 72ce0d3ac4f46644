package cmdassist

// Version is overridden at build time with -ldflags "-X github.com/aretw0/cmdassist.Version=...".
var Version = "dev"
