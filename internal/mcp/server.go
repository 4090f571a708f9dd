// Package mcp provides an MCP (Model Context Protocol) server that exposes
// the task list as MCP tools for AI assistants.
package mcp

import (
	"context"
	"fmt"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/valter-silva-au/tasklist/internal/core"
	"github.com/valter-silva-au/tasklist/internal/storage"
	"github.com/valter-silva-au/tasklist/pkg/models"
)

// Server wraps the task store and exposes it as MCP tools.
type Server struct {
	server *gomcp.Server
	store  storage.TaskStore
	save   func() error
}

// NewServer creates an MCP server over the given task store. save is
// called after every mutation and may be nil when persistence is handled
// elsewhere.
func NewServer(store storage.TaskStore, save func() error, version string) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{store: store, save: save}

	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "tl", Version: version},
		nil,
	)

	s.registerTools()

	return s
}

// Run starts the MCP server on stdio, blocking until the client
// disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type listTasksInput struct {
	ShowDone  bool   `json:"show_done,omitempty" jsonschema:"include completed tasks in the result"`
	Context   string `json:"context,omitempty" jsonschema:"only return tasks carrying this context tag"`
	NoContext bool   `json:"no_context,omitempty" jsonschema:"only return tasks without any context tag"`
	Project   string `json:"project,omitempty" jsonschema:"only return tasks carrying this project tag"`
	NoProject bool   `json:"no_project,omitempty" jsonschema:"only return tasks without any project tag"`
}

type taskOutput struct {
	Number      int      `json:"number"`
	Done        bool     `json:"done"`
	Priority    string   `json:"priority,omitempty"`
	Created     string   `json:"created,omitempty"`
	Due         string   `json:"due,omitempty"`
	Description string   `json:"description"`
	Contexts    []string `json:"contexts,omitempty"`
	Projects    []string `json:"projects,omitempty"`
}

type listTasksOutput struct {
	Tasks []taskOutput `json:"tasks"`
	Count int          `json:"count"`
}

type addTaskInput struct {
	Description string   `json:"description" jsonschema:"required,the task description text"`
	Priority    string   `json:"priority,omitempty" jsonschema:"priority letter A-Z, or x for done"`
	Due         string   `json:"due,omitempty" jsonschema:"due date in YYYY-MM-DD form"`
	Contexts    []string `json:"contexts,omitempty" jsonschema:"context tags for the task"`
	Projects    []string `json:"projects,omitempty" jsonschema:"project tags for the task"`
}

type addTaskOutput struct {
	Number  int    `json:"number"`
	Message string `json:"message"`
}

type taskNumberInput struct {
	Number int `json:"number" jsonschema:"required,the task number as shown by list_tasks"`
}

type messageOutput struct {
	Message string `json:"message"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_tasks",
		Description: "List tasks passing the done/context/project filters. Returns task numbers usable with the other tools.",
	}, s.handleListTasks)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "add_task",
		Description: "Add a new task with a description and optional priority, due date, and tags.",
	}, s.handleAddTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "complete_task",
		Description: "Mark the task with the given number as done.",
	}, s.handleCompleteTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "remove_task",
		Description: "Delete the task with the given number from the list.",
	}, s.handleRemoveTask)
}

// --- Tool handlers ---

func (s *Server) handleListTasks(_ context.Context, _ *gomcp.CallToolRequest, input listTasksInput) (*gomcp.CallToolResult, listTasksOutput, error) {
	filter := core.Filter{
		ShowDone: input.ShowDone,
		Context:  selectionFromInput(input.Context, input.NoContext),
		Project:  selectionFromInput(input.Project, input.NoProject),
	}

	out := listTasksOutput{Tasks: []taskOutput{}}
	for i, task := range s.store.Tasks() {
		if !filter.Visible(task) {
			continue
		}
		out.Tasks = append(out.Tasks, taskToOutput(i+1, task))
	}
	out.Count = len(out.Tasks)

	return nil, out, nil
}

func (s *Server) handleAddTask(_ context.Context, _ *gomcp.CallToolRequest, input addTaskInput) (*gomcp.CallToolResult, addTaskOutput, error) {
	if input.Description == "" {
		return errorResult("description is required"), addTaskOutput{}, nil
	}

	priority, err := models.ParsePriority(input.Priority)
	if err != nil {
		return errorResult(err.Error()), addTaskOutput{}, nil
	}

	due, err := models.ParseDate(input.Due)
	if err != nil {
		return errorResult(err.Error()), addTaskOutput{}, nil
	}

	task := models.Task{
		Priority:    priority,
		Done:        priority == models.PriorityDone,
		Creation:    models.Today(),
		Due:         due,
		Description: input.Description,
		Context:     input.Contexts,
		Project:     input.Projects,
	}

	s.store.Add(task)
	if err := s.persist(); err != nil {
		return errorResult(err.Error()), addTaskOutput{}, nil
	}

	return nil, addTaskOutput{
		Number:  s.store.Len(),
		Message: fmt.Sprintf("added task %d: %s", s.store.Len(), task.Description),
	}, nil
}

func (s *Server) handleCompleteTask(_ context.Context, _ *gomcp.CallToolRequest, input taskNumberInput) (*gomcp.CallToolResult, messageOutput, error) {
	if err := s.store.MarkDone(input.Number - 1); err != nil {
		return errorResult(err.Error()), messageOutput{}, nil
	}
	if err := s.persist(); err != nil {
		return errorResult(err.Error()), messageOutput{}, nil
	}
	return nil, messageOutput{Message: fmt.Sprintf("marked task %d as done", input.Number)}, nil
}

func (s *Server) handleRemoveTask(_ context.Context, _ *gomcp.CallToolRequest, input taskNumberInput) (*gomcp.CallToolResult, messageOutput, error) {
	if err := s.store.Remove(input.Number - 1); err != nil {
		return errorResult(err.Error()), messageOutput{}, nil
	}
	if err := s.persist(); err != nil {
		return errorResult(err.Error()), messageOutput{}, nil
	}
	return nil, messageOutput{Message: fmt.Sprintf("removed task %d", input.Number)}, nil
}

// --- Helpers ---

func (s *Server) persist() error {
	if s.save == nil {
		return nil
	}
	return s.save()
}

func selectionFromInput(tag string, none bool) core.Selection {
	switch {
	case none:
		return core.None()
	case tag != "":
		return core.Tag(tag)
	default:
		return core.All()
	}
}

func taskToOutput(number int, t models.Task) taskOutput {
	return taskOutput{
		Number:      number,
		Done:        t.Done,
		Priority:    string(t.Priority),
		Created:     t.Creation.String(),
		Due:         t.Due.String(),
		Description: t.Description,
		Contexts:    t.Context,
		Projects:    t.Project,
	}
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}
