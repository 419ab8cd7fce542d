package documents

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects map[string][]byte
	putErr  error
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, _ := io.ReadAll(in.Body)
	f.objects[aws.ToString(in.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{
		Body:         io.NopCloser(bytes.NewReader(data)),
		LastModified: aws.Time(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
	}, nil
}

func (f *fakeS3) ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	out := &s3.ListObjectsV2Output{IsTruncated: aws.Bool(false)}
	for key, data := range f.objects {
		out.Contents = append(out.Contents, types.Object{Key: aws.String(key), Size: aws.Int64(int64(len(data)))})
	}
	return out, nil
}

func TestS3Store_PutAndGet(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{}}
	store := NewS3StoreWithClient(fake, S3Config{Bucket: "docs", Region: "sa-east-1"})

	loc, err := store.Put(context.Background(), "agendamentos/AGD-1-2/AGD-1-2.txt", []byte("hello"), "")
	require.NoError(t, err)
	assert.Equal(t, "s3://docs/agendamentos/AGD-1-2/AGD-1-2.txt", loc.Path)
	assert.Equal(t, "https://docs.s3.sa-east-1.amazonaws.com/agendamentos/AGD-1-2/AGD-1-2.txt", loc.URL)

	obj, err := store.Get(context.Background(), "agendamentos/AGD-1-2/AGD-1-2.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(obj.Content))
	assert.Equal(t, "text/plain; charset=utf-8", obj.ContentType)

	listing, err := store.List(context.Background(), DefaultPrefix, 10)
	require.NoError(t, err)
	assert.Len(t, listing.Objects, 1)
	assert.Equal(t, "docs", listing.Bucket)
}

func TestS3Store_CustomEndpointURL(t *testing.T) {
	store := NewS3StoreWithClient(&fakeS3{objects: map[string][]byte{}}, S3Config{Bucket: "docs", Endpoint: "minio.local:9000/"})
	loc, err := store.Put(context.Background(), "agendamentos/a/b.html", []byte("x"), "text/html")
	require.NoError(t, err)
	assert.Equal(t, "https://minio.local:9000/agendamentos/a/b.html", loc.URL)
}

func TestS3Store_Errors(t *testing.T) {
	store := NewS3StoreWithClient(&fakeS3{objects: map[string][]byte{}, putErr: errors.New("access denied")}, S3Config{Bucket: "docs"})

	_, err := store.Put(context.Background(), "agendamentos/a/b.html", []byte("x"), "")
	assert.ErrorIs(t, err, ErrWrite)

	_, err = store.Get(context.Background(), "agendamentos/missing.html")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}
