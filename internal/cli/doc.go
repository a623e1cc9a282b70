// Package cli is a terminal front end for the diary. It shares the journal
// service and file format with the desktop window, so both can be used on the
// same diary file.
package cli
