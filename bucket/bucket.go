package bucket

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"github.com/faizfusion/saharenau/constants"
)

func newUploader() *s3manager.Uploader {
	cfg := aws.Config{}
	if endpoint := os.Getenv("S3_ENDPOINT"); endpoint != "" {
		cfg.Endpoint = &endpoint
		cfg.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(&cfg)
	if err != nil {
		panic("Could not create an S3 session because " + err.Error())
	}
	return s3manager.NewUploader(sess)
}

func isArtifact(name string) bool {
	return strings.HasSuffix(name, ".mid") || strings.HasSuffix(name, ".musicxml")
}

func contentType(name string) string {
	if strings.HasSuffix(name, ".mid") {
		return "audio/midi"
	}
	return "application/vnd.recordare.musicxml+xml"
}

// PublishDir uploads every rendered artifact in dir to the publish
// bucket, keyed under the given prefix.
func PublishDir(dir string, prefix string) error {
	bucketName := constants.GetBucketName()
	uploader := newUploader()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("could not read dir: %w", err)
	}

	var uploaded int
	for _, entry := range entries {
		if entry.IsDir() || !isArtifact(entry.Name()) {
			continue
		}

		f, err := os.Open(filepath.Join(dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("could not open %v: %w", entry.Name(), err)
		}

		key := entry.Name()
		if prefix != "" {
			key = prefix + "/" + key
		}

		fmt.Printf("Uploading %v to s3://%v/%v\n", entry.Name(), bucketName, key)
		_, err = uploader.Upload(&s3manager.UploadInput{
			Bucket:      aws.String(bucketName),
			Key:         aws.String(key),
			Body:        f,
			ContentType: aws.String(contentType(entry.Name())),
		})
		f.Close()
		if err != nil {
			return fmt.Errorf("upload failed for %v: %w", entry.Name(), err)
		}
		uploaded++
	}

	fmt.Printf("Uploaded %v artifacts\n", uploaded)
	return nil
}
