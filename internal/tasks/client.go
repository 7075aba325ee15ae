// Package tasks resolves ECS task identifiers through the AWS API. Tasks
// have no static representation in the infrastructure snapshot, so the task
// family's resolver lookups report nothing and callers come here instead.
package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ecs"

	awshandlers "opsboard/resolve/handlers/aws"
)

// DescribeAPI is the slice of the ECS client this package uses.
type DescribeAPI interface {
	DescribeTasks(ctx context.Context, params *ecs.DescribeTasksInput, optFns ...func(*ecs.Options)) (*ecs.DescribeTasksOutput, error)
	ListTasks(ctx context.Context, params *ecs.ListTasksInput, optFns ...func(*ecs.Options)) (*ecs.ListTasksOutput, error)
}

// TaskDetail is the resolved view of one running task.
type TaskDetail struct {
	TaskID        string     `json:"taskId"`
	Service       string     `json:"service,omitempty"`
	TaskArn       string     `json:"taskArn"`
	LastStatus    string     `json:"lastStatus"`
	DesiredStatus string     `json:"desiredStatus"`
	StartedAt     *time.Time `json:"startedAt,omitempty"`
	Containers    []string   `json:"containers,omitempty"`
}

// Client looks tasks up in one ECS cluster.
type Client struct {
	api     DescribeAPI
	cluster string
	parser  *awshandlers.TaskHandler
}

// NewClient builds a client using the default AWS credential chain.
func NewClient(ctx context.Context, cluster string) (*Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewClientWithAPI(ecs.NewFromConfig(cfg), cluster), nil
}

// NewClientWithAPI builds a client over an existing API implementation.
// Tests inject fakes through this constructor.
func NewClientWithAPI(api DescribeAPI, cluster string) *Client {
	return &Client{
		api:     api,
		cluster: cluster,
		parser:  awshandlers.NewTaskHandler(),
	}
}

// Lookup resolves a composite or bare task identifier to its live task.
// The identifier must carry the full-length task id; DescribeTasks rejects
// abbreviated display forms.
func (c *Client) Lookup(ctx context.Context, id string) (*TaskDetail, error) {
	parsed := c.parser.ParseID(id)
	if parsed.FullID == "" {
		return nil, fmt.Errorf("empty task identifier")
	}

	out, err := c.api.DescribeTasks(ctx, &ecs.DescribeTasksInput{
		Cluster: aws.String(c.cluster),
		Tasks:   []string{parsed.FullID},
	})
	if err != nil {
		return nil, fmt.Errorf("describe tasks failed: %w", err)
	}
	if len(out.Tasks) == 0 {
		return nil, nil
	}

	task := out.Tasks[0]
	detail := &TaskDetail{
		TaskID:        parsed.FullID,
		Service:       parsed.Service,
		TaskArn:       aws.ToString(task.TaskArn),
		LastStatus:    aws.ToString(task.LastStatus),
		DesiredStatus: aws.ToString(task.DesiredStatus),
		StartedAt:     task.StartedAt,
	}
	for _, container := range task.Containers {
		detail.Containers = append(detail.Containers, aws.ToString(container.Name))
	}
	return detail, nil
}

// ListServiceTasks enumerates the task ARNs of one service in the cluster.
func (c *Client) ListServiceTasks(ctx context.Context, service string) ([]string, error) {
	out, err := c.api.ListTasks(ctx, &ecs.ListTasksInput{
		Cluster:     aws.String(c.cluster),
		ServiceName: aws.String(service),
	})
	if err != nil {
		return nil, fmt.Errorf("list tasks failed: %w", err)
	}
	return out.TaskArns, nil
}
