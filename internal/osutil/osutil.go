// Package osutil holds platform constants shared across packages
package osutil

const Windows = "windows"

type exitCode int

const ExitError exitCode = 1
