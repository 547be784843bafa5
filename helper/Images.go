package helper

import (
	"encoding/base64"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
)

// StoreImage resolves the image field of a request into a stored URL.
// Clients either send a regular URL, which is kept as-is, or an inline
// data URI, whose bytes are written to GridFS and served back under
// /api/images/:image_id.
func StoreImage(bucket *gridfs.Bucket, image string) (string, error) {
	image = strings.TrimSpace(image)
	if image == "" || !strings.HasPrefix(image, "data:") {
		return image, nil
	}

	data, contentType, err := decodeDataURI(image)
	if err != nil {
		return "", err
	}

	fileID := primitive.NewObjectID()
	uploadStream, err := bucket.OpenUploadStreamWithID(fileID, contentType)
	if err != nil {
		return "", err
	}
	if _, err := uploadStream.Write(data); err != nil {
		uploadStream.Close()
		return "", err
	}
	if err := uploadStream.Close(); err != nil {
		return "", err
	}
	return "/api/images/" + fileID.Hex(), nil
}

// decodeDataURI splits "data:<mediatype>;base64,<payload>" into payload
// bytes and media type.
func decodeDataURI(uri string) ([]byte, string, error) {
	rest := strings.TrimPrefix(uri, "data:")
	meta, payload, found := strings.Cut(rest, ",")
	if !found {
		return nil, "", fmt.Errorf("malformed data URI")
	}
	if !strings.HasSuffix(meta, ";base64") {
		return nil, "", fmt.Errorf("data URI must be base64 encoded")
	}
	contentType := strings.TrimSuffix(meta, ";base64")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("malformed data URI payload: %w", err)
	}
	return data, contentType, nil
}
