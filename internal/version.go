package internal

// Version is the vymova release
const Version = "0.3.0"
