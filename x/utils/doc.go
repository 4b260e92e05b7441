// Package utils provides decorators shared by every application stack:
// savepoints, panic recovery and request logging.
package utils
