package tasks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeECS struct {
	describeIn  *ecs.DescribeTasksInput
	describeOut *ecs.DescribeTasksOutput
	describeErr error
	listOut     *ecs.ListTasksOutput
}

func (f *fakeECS) DescribeTasks(ctx context.Context, params *ecs.DescribeTasksInput, optFns ...func(*ecs.Options)) (*ecs.DescribeTasksOutput, error) {
	f.describeIn = params
	return f.describeOut, f.describeErr
}

func (f *fakeECS) ListTasks(ctx context.Context, params *ecs.ListTasksInput, optFns ...func(*ecs.Options)) (*ecs.ListTasksOutput, error) {
	return f.listOut, nil
}

const fullTaskID = "0123456789abcdef0123456789abcdef01234567"

func TestLookupResolvesCompositeID(t *testing.T) {
	started := time.Now()
	fake := &fakeECS{
		describeOut: &ecs.DescribeTasksOutput{
			Tasks: []ecstypes.Task{{
				TaskArn:       aws.String("arn:aws:ecs:us-east-1:1:task/prod/" + fullTaskID),
				LastStatus:    aws.String("RUNNING"),
				DesiredStatus: aws.String("RUNNING"),
				StartedAt:     &started,
				Containers:    []ecstypes.Container{{Name: aws.String("app")}},
			}},
		},
	}
	client := NewClientWithAPI(fake, "prod")

	detail, err := client.Lookup(context.Background(), "web:"+fullTaskID)
	require.NoError(t, err)
	require.NotNil(t, detail)

	// The full-length task id, not the composite, goes to the API.
	require.NotNil(t, fake.describeIn)
	assert.Equal(t, []string{fullTaskID}, fake.describeIn.Tasks)
	assert.Equal(t, "prod", aws.ToString(fake.describeIn.Cluster))

	assert.Equal(t, "web", detail.Service)
	assert.Equal(t, fullTaskID, detail.TaskID)
	assert.Equal(t, "RUNNING", detail.LastStatus)
	assert.Equal(t, []string{"app"}, detail.Containers)
}

func TestLookupBareIDHasNoService(t *testing.T) {
	fake := &fakeECS{describeOut: &ecs.DescribeTasksOutput{Tasks: []ecstypes.Task{{}}}}
	client := NewClientWithAPI(fake, "prod")

	detail, err := client.Lookup(context.Background(), fullTaskID)
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, "", detail.Service)
	assert.Equal(t, fullTaskID, detail.TaskID)
}

func TestLookupMissingTaskReturnsNil(t *testing.T) {
	fake := &fakeECS{describeOut: &ecs.DescribeTasksOutput{}}
	client := NewClientWithAPI(fake, "prod")

	detail, err := client.Lookup(context.Background(), fullTaskID)
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestLookupEmptyIdentifier(t *testing.T) {
	client := NewClientWithAPI(&fakeECS{}, "prod")
	_, err := client.Lookup(context.Background(), "")
	assert.Error(t, err)
}

func TestLookupPropagatesAPIError(t *testing.T) {
	fake := &fakeECS{describeErr: errors.New("throttled")}
	client := NewClientWithAPI(fake, "prod")

	_, err := client.Lookup(context.Background(), fullTaskID)
	assert.ErrorContains(t, err, "throttled")
}

func TestListServiceTasks(t *testing.T) {
	fake := &fakeECS{listOut: &ecs.ListTasksOutput{TaskArns: []string{"arn-1", "arn-2"}}}
	client := NewClientWithAPI(fake, "prod")

	arns, err := client.ListServiceTasks(context.Background(), "web")
	require.NoError(t, err)
	assert.Equal(t, []string{"arn-1", "arn-2"}, arns)
}
