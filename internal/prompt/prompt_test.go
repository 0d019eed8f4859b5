package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RamK777-stack/jira-bot-api/internal/models"
)

func TestBuildEmbedsContextAndContract(t *testing.T) {
	pc := models.PromptContext{ProjectKey: "OPS", ProjectName: "Operations"}

	out := Build(pc)

	assert.Contains(t, out, `{"JIRA_PROJECT_KEY":"OPS","JIRA_PROJECT_NAME":"Operations"}`)
	assert.Contains(t, out, `"get_work_status(jql query)"`)
	assert.Contains(t, out, `"get_ticket_details(ticket_id)"`)
	assert.Contains(t, out, `"ticket_summary"`)
	assert.Contains(t, out, `"team_work_summary"`)
	assert.NotContains(t, out, "{{JIRA_INFO}}", "placeholder must be substituted")
}

func TestBuildIsDeterministic(t *testing.T) {
	pc := models.PromptContext{ProjectKey: "OPS", ProjectName: "Operations"}
	assert.Equal(t, Build(pc), Build(pc))
}
