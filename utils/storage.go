package utils

import (
	"bytes"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3Storage uploads profile photos and proof documents to an S3-compatible
// object store.
type S3Storage struct {
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Endpoint  string
	PublicURL string
}

func (s *S3Storage) client() *s3.S3 {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:   aws.String(s.Region),
		Endpoint: aws.String(s.Endpoint),
		Credentials: credentials.NewStaticCredentials(
			s.AccessKey, s.SecretKey, "",
		),
	}))
	return s3.New(sess)
}

// UploadFile stores file under folder/fileName and returns the public URL.
func (s *S3Storage) UploadFile(file []byte, fileName, folder, contentType string) (string, error) {
	filePath := fmt.Sprintf("%s/%s", folder, fileName)

	_, err := s.client().PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.Bucket),
		Key:           aws.String(filePath),
		Body:          bytes.NewReader(file),
		ContentLength: aws.Int64(int64(len(file))),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %v", err)
	}

	return fmt.Sprintf("%s/%s", s.PublicURL, filePath), nil
}
