// Package file reads static resources that templates inline or fingerprint.
//
// Resources are addressed with "resource://" paths relative to the root of a
// Storage. A path without the scheme is treated as a resource path, so
// "Vendor.Site/Public/app.css" and "resource://Vendor.Site/Public/app.css"
// refer to the same file.
//
// Two storages are provided:
//
//   - LocalStorage reads from a directory and rejects paths that escape it.
//   - S3Storage reads objects from an S3 bucket (or an S3-compatible service)
//     using aws-sdk-go-v2.
//
// Example:
//
//	store, err := file.NewLocalStorage("./Resources")
//	if err != nil {
//		return err
//	}
//	css, err := store.Read(ctx, "resource://Vendor.Site/Public/critical.css")
//	sum, err := store.Hash(ctx, "Vendor.Site/Public/app.js") // sha1 hex
//
// Missing files are reported with ErrFileNotFound so callers can tell them
// apart from I/O failures.
package file
