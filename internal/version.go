package internal

// Version is the speedreader release
const Version = "0.1.0"
