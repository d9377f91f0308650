package minio

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMinio implements minioAPI for testing without network.
type fakeMinio struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error
	madeBucket      string

	statErr error

	presignErr     error
	presignedKey   string
	presignExpires time.Duration
}

func (f *fakeMinio) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}

func (f *fakeMinio) MakeBucket(_ context.Context, bucket string, _ minioLib.MakeBucketOptions) error {
	f.madeBucket = bucket
	return f.makeBucketErr
}

func (f *fakeMinio) StatObject(_ context.Context, _ string, _ string, _ minioLib.StatObjectOptions) (minioLib.ObjectInfo, error) {
	return minioLib.ObjectInfo{}, f.statErr
}

func (f *fakeMinio) PresignedGetObject(_ context.Context, bucket, key string, expires time.Duration, _ url.Values) (*url.URL, error) {
	if f.presignErr != nil {
		return nil, f.presignErr
	}
	f.presignedKey = key
	f.presignExpires = expires
	return &url.URL{Scheme: "http", Host: "minio:9000", Path: "/" + bucket + "/" + key, RawQuery: "X-Amz-Signature=abc"}, nil
}

func TestNewAvatarClientWithAPI(t *testing.T) {
	ctx := context.Background()

	t.Run("bucket exists", func(t *testing.T) {
		api := &fakeMinio{bucketExists: true}
		c, err := NewAvatarClientWithAPI(ctx, api, "avatars", 0)
		require.NoError(t, err)
		assert.Equal(t, "avatars", c.bucket)
		assert.Equal(t, DefaultPresignTTL, c.presignTTL)
		assert.Empty(t, api.madeBucket)
	})

	t.Run("creates bucket", func(t *testing.T) {
		api := &fakeMinio{}
		_, err := NewAvatarClientWithAPI(ctx, api, "avatars", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, "avatars", api.madeBucket)
	})

	t.Run("bucket check error", func(t *testing.T) {
		api := &fakeMinio{bucketExistsErr: errors.New("boom")}
		c, err := NewAvatarClientWithAPI(ctx, api, "avatars", 0)
		assert.Nil(t, c)
		assert.ErrorContains(t, err, "failed to ensure bucket exists")
	})

	t.Run("make bucket error", func(t *testing.T) {
		api := &fakeMinio{makeBucketErr: errors.New("fail")}
		c, err := NewAvatarClientWithAPI(ctx, api, "avatars", 0)
		assert.Nil(t, c)
		assert.ErrorContains(t, err, "failed to create bucket")
	})
}

func TestAvatarClient_AvatarURL(t *testing.T) {
	ctx := context.Background()

	t.Run("presigned", func(t *testing.T) {
		api := &fakeMinio{}
		c := &AvatarClient{api: api, bucket: "avatars", presignTTL: 10 * time.Minute}

		got, err := c.AvatarURL(ctx, "users/1.png")
		require.NoError(t, err)
		assert.Equal(t, "http://minio:9000/avatars/users/1.png?X-Amz-Signature=abc", got)
		assert.Equal(t, "users/1.png", api.presignedKey)
		assert.Equal(t, 10*time.Minute, api.presignExpires)
	})

	t.Run("absolute url passthrough", func(t *testing.T) {
		api := &fakeMinio{}
		c := &AvatarClient{api: api, bucket: "avatars"}

		got, err := c.AvatarURL(ctx, "https://example.com/me.png")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/me.png", got)
		assert.Empty(t, api.presignedKey)
	})

	t.Run("missing object", func(t *testing.T) {
		api := &fakeMinio{statErr: minioLib.ErrorResponse{Code: "NoSuchKey"}}
		c := &AvatarClient{api: api, bucket: "avatars"}

		got, err := c.AvatarURL(ctx, "users/gone.png")
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Empty(t, api.presignedKey)
	})

	t.Run("stat error", func(t *testing.T) {
		api := &fakeMinio{statErr: errors.New("stat-fail")}
		c := &AvatarClient{api: api, bucket: "avatars"}

		_, err := c.AvatarURL(ctx, "k")
		assert.ErrorContains(t, err, "failed to stat object")
	})

	t.Run("error", func(t *testing.T) {
		api := &fakeMinio{presignErr: errors.New("presign-fail")}
		c := &AvatarClient{api: api, bucket: "avatars"}

		_, err := c.AvatarURL(ctx, "k")
		assert.ErrorContains(t, err, "failed to presign object")
	})
}

func TestAvatarClient_Exists(t *testing.T) {
	ctx := context.Background()

	t.Run("exists", func(t *testing.T) {
		c := &AvatarClient{api: &fakeMinio{}, bucket: "b"}
		ok, err := c.Exists(ctx, "k")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("not found", func(t *testing.T) {
		c := &AvatarClient{api: &fakeMinio{statErr: minioLib.ErrorResponse{Code: "NoSuchKey"}}, bucket: "b"}
		ok, err := c.Exists(ctx, "absent")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("other error", func(t *testing.T) {
		c := &AvatarClient{api: &fakeMinio{statErr: errors.New("stat-fail")}, bucket: "b"}
		ok, err := c.Exists(ctx, "k")
		assert.False(t, ok)
		assert.ErrorContains(t, err, "failed to stat object")
	})
}
