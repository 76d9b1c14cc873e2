package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobfit-engine/internal/config"
	"jobfit-engine/internal/domain"
)

func testProfile() *config.Profile {
	p := &config.Profile{ID: "p1"}
	p.Filters.Seniority = config.BlockRule{Any: []string{"junior", "intern", "entry level"}}
	p.Filters.Roles = config.BlockRule{Any: []string{"recruiter", "account executive"}}
	p.Filters.Departments = config.BlockRule{Any: []string{"human resources", "legal"}}
	p.Filters.SalesMarketing = config.BlockRule{
		Any:        []string{"sales", "marketing"},
		Exceptions: []string{"cto", "chief", "vp of engineering"},
	}
	return p
}

func TestChainBlocksOnFirstHit(t *testing.T) {
	c := NewChain(testProfile())

	d := c.Run(domain.Job{Title: "Junior Software Engineer"})
	require.True(t, d.Blocked)
	assert.Equal(t, "seniority_block", d.Handler)
	assert.Contains(t, d.Reason, "junior")
}

func TestChainPassesCleanJob(t *testing.T) {
	c := NewChain(testProfile())

	d := c.Run(domain.Job{Title: "Senior Platform Engineer", Description: "build infrastructure"})
	assert.False(t, d.Blocked)
	assert.Empty(t, d.Reason)
}

func TestChainChecksDescription(t *testing.T) {
	c := NewChain(testProfile())

	d := c.Run(domain.Job{
		Title:       "Team Member",
		Description: "join our human resources group",
	})
	require.True(t, d.Blocked)
	assert.Equal(t, "department_block", d.Handler)
}

func TestExceptionOverridesBlock(t *testing.T) {
	c := NewChain(testProfile())

	// "sales" would block, but the C-level exception in the title wins
	d := c.Run(domain.Job{Title: "CTO", Description: "lead sales and engineering"})
	assert.False(t, d.Blocked)

	// without the exception the same description blocks
	d = c.Run(domain.Job{Title: "Team Lead", Description: "lead sales and engineering"})
	require.True(t, d.Blocked)
	assert.Equal(t, "sales_marketing_block", d.Handler)
}

func TestWordBoundaryInBlocks(t *testing.T) {
	c := NewChain(testProfile())

	// "intern" must not match inside "international"
	d := c.Run(domain.Job{Title: "Engineer, International Markets Platform"})
	assert.False(t, d.Blocked)
}

func TestHandlersAddRemoveReorder(t *testing.T) {
	c := NewChain(testProfile())
	require.Equal(t, []string{"seniority_block", "role_block", "department_block", "sales_marketing_block"}, c.Handlers())

	c.Remove("role_block")
	assert.NotContains(t, c.Handlers(), "role_block")

	custom := Handler{
		Name: "contract_block",
		Check: func(j domain.Job) (bool, string) {
			if domain.ContainsToken(j.Title, "contract") {
				return true, "contract_block: matched \"contract\""
			}
			return false, ""
		},
	}
	c.Prepend(custom)
	assert.Equal(t, "contract_block", c.Handlers()[0])

	d := c.Run(domain.Job{Title: "Contract Junior Engineer"})
	require.True(t, d.Blocked)
	// prepended handler wins over the seniority block
	assert.Equal(t, "contract_block", d.Handler)
}

func TestEmptyJobNeverBlocks(t *testing.T) {
	c := NewChain(testProfile())
	assert.False(t, c.Run(domain.Job{}).Blocked)
}
