package cinta

// Version is the current cinta release.
var Version = "0.4.1"
