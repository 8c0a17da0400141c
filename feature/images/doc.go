// Package images stores listing pictures in object storage.
//
// Images are addressed by the hex SHA-256 of their content and kept under
// the "images/" prefix of the configured bucket. Uploading a picture that is
// already stored returns the existing id without writing it again, which is
// what the "images.add" bulk operation expects when sellers attach the same
// photo to many listings.
package images
