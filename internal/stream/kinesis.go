// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stream writes to the Kinesis stream target: it reconciles the
// stream's retention period to the configured value and appends one record
// per invocation. No retries and no rollback; a retention change that
// precedes a failed put is left in place.
package stream

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/kinesis"
)

// OperationError is a failure of one remote call against the stream target.
type OperationError struct {
	// Op names the remote operation that failed, e.g. "put record".
	Op  string
	Err error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("stream %s failed: %v", e.Op, e.Err)
}

func (e *OperationError) Unwrap() error { return e.Err }

// kinesisAPI is the subset of the Kinesis client surface the target uses.
// Tests substitute a fake.
type kinesisAPI interface {
	DescribeStreamSummary(ctx context.Context, in *kinesis.DescribeStreamSummaryInput, opts ...func(*kinesis.Options)) (*kinesis.DescribeStreamSummaryOutput, error)
	IncreaseStreamRetentionPeriod(ctx context.Context, in *kinesis.IncreaseStreamRetentionPeriodInput, opts ...func(*kinesis.Options)) (*kinesis.IncreaseStreamRetentionPeriodOutput, error)
	DecreaseStreamRetentionPeriod(ctx context.Context, in *kinesis.DecreaseStreamRetentionPeriodInput, opts ...func(*kinesis.Options)) (*kinesis.DecreaseStreamRetentionPeriodOutput, error)
	PutRecord(ctx context.Context, in *kinesis.PutRecordInput, opts ...func(*kinesis.Options)) (*kinesis.PutRecordOutput, error)
}

// Target publishes to a named Kinesis stream.
type Target struct {
	api kinesisAPI
}

// New returns a Target backed by a Kinesis client built from static
// credentials and the configured region.
func New(accessKey, secretKey, region string) *Target {
	client := kinesis.New(kinesis.Options{
		Region:      region,
		Credentials: credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
	})
	return &Target{api: client}
}

// ReconcileRetention reads the stream's current retention period and
// adjusts it to desired hours: a decrease call when above, an increase
// call when below, no call when equal. The read and the conditional write
// are not atomic; concurrent invocations against the same stream can race.
func (t *Target) ReconcileRetention(ctx context.Context, streamName string, desired int32) error {
	summary, err := t.api.DescribeStreamSummary(ctx, &kinesis.DescribeStreamSummaryInput{
		StreamName: aws.String(streamName),
	})
	if err != nil {
		return &OperationError{Op: "describe stream summary", Err: err}
	}

	current := aws.ToInt32(summary.StreamDescriptionSummary.RetentionPeriodHours)
	switch {
	case current > desired:
		_, err := t.api.DecreaseStreamRetentionPeriod(ctx, &kinesis.DecreaseStreamRetentionPeriodInput{
			StreamName:           aws.String(streamName),
			RetentionPeriodHours: aws.Int32(desired),
		})
		if err != nil {
			return &OperationError{Op: "decrease retention period", Err: err}
		}
	case current < desired:
		_, err := t.api.IncreaseStreamRetentionPeriod(ctx, &kinesis.IncreaseStreamRetentionPeriodInput{
			StreamName:           aws.String(streamName),
			RetentionPeriodHours: aws.Int32(desired),
		})
		if err != nil {
			return &OperationError{Op: "increase retention period", Err: err}
		}
	}
	return nil
}

// PutRecord appends data as one record to the named stream under
// partitionKey.
func (t *Target) PutRecord(ctx context.Context, streamName string, data []byte, partitionKey string) error {
	_, err := t.api.PutRecord(ctx, &kinesis.PutRecordInput{
		StreamName:   aws.String(streamName),
		Data:         data,
		PartitionKey: aws.String(partitionKey),
	})
	if err != nil {
		return &OperationError{Op: "put record", Err: err}
	}
	return nil
}
