package extractor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractKeepsSourceOrder(t *testing.T) {
	src := `router.get('/', list);
router.get('/:id', get);
router.post('/', create);
router.put('/:id', update);
router.delete('/:id', remove);
`
	routes := New().Extract(src, "/api/events", "events.ts")
	require.Len(t, routes, 5)

	require.Equal(t, "GET", routes[0].Method)
	require.Equal(t, "/api/events", routes[0].Path)
	require.Equal(t, "GET", routes[1].Method)
	require.Equal(t, "/api/events/:id", routes[1].Path)
	require.Equal(t, "POST", routes[2].Method)
	require.Equal(t, "/api/events", routes[2].Path)
	require.Equal(t, "PUT", routes[3].Method)
	require.Equal(t, "DELETE", routes[4].Method)

	require.Equal(t, "/:id", routes[4].SubPath)
	require.Equal(t, "events.ts", routes[4].File)
	require.Equal(t, 5, routes[4].Line)
}

func TestExtractPathNormalization(t *testing.T) {
	tests := []struct {
		name string
		base string
		sub  string
		want string
	}{
		{"root subpath collapses", "/api/events", "/", "/api/events"},
		{"empty subpath", "/api/events", "", "/api/events"},
		{"plain join", "/api/auth", "/login", "/api/auth/login"},
		{"non api base", "/webhooks", "/stripe", "/webhooks/stripe"},
		{"trailing slash dropped", "/api/tours", "/book/", "/api/tours/book"},
		{"bare slash survives", "/", "", "/"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := "router.get('" + tc.sub + "', handler);"
			routes := New().Extract(src, tc.base, "t.ts")
			require.Len(t, routes, 1)
			require.Equal(t, tc.want, routes[0].Path)
			require.Equal(t, tc.sub, routes[0].SubPath)
		})
	}
}

func TestExtractDescFromDocBlock(t *testing.T) {
	src := `/**
 * @desc Fetch all events
 * @route GET /api/events
 * @access Private
 */
router.get('/', getEvents);
`
	routes := New().Extract(src, "/api/events", "events.ts")
	require.Len(t, routes, 1)
	require.Equal(t, "Fetch all events", routes[0].Description)
	require.Equal(t, "Fetch all events", routes[0].Name)
}

func TestExtractFallbackNameAndDescription(t *testing.T) {
	routes := New().Extract("router.post('/login', login);", "/api/auth", "auth.ts")
	require.Len(t, routes, 1)
	require.Equal(t, "POST /login", routes[0].Name)
	require.Equal(t, "POST /api/auth/login", routes[0].Description)
}

func TestExtractPlainCommentDescription(t *testing.T) {
	src := `// Refresh the session token
router.post('/refresh', refresh);
`
	routes := New().Extract(src, "/api/auth", "auth.ts")
	require.Len(t, routes, 1)
	require.Equal(t, "Refresh the session token", routes[0].Description)
	require.Equal(t, "POST /refresh", routes[0].Name)
}

func TestExtractTagLinesNeverBecomeDescription(t *testing.T) {
	src := `/**
 * @route POST /api/users
 * @access Private
 */
router.post('/', createUser);
`
	routes := New().Extract(src, "/api/users", "users.ts")
	require.Len(t, routes, 1)
	require.Equal(t, "POST /api/users", routes[0].Description)
	require.Equal(t, "POST /", routes[0].Name)
}

func TestExtractBufferClearedByUnrelatedCode(t *testing.T) {
	src := `// stale comment
const limiter = rateLimit();
router.get('/ping', ping);
`
	routes := New().Extract(src, "/api/test", "test.ts")
	require.Len(t, routes, 1)
	require.Equal(t, "GET /api/test/ping", routes[0].Description)
}

func TestExtractBufferSurvivesReceiverLines(t *testing.T) {
	src := `// List vehicles
router.use(requireAuth);
router.get('/', listVehicles);
`
	routes := New().Extract(src, "/api/vehicles", "vehicles.ts")
	require.Len(t, routes, 1)
	require.Equal(t, "List vehicles", routes[0].Description)
}

func TestExtractBufferSurvivesBlankLines(t *testing.T) {
	src := "// Create a booking\n\n\nrouter.post('/', createBooking);"
	routes := New().Extract(src, "/api/tours", "tours.ts")
	require.Len(t, routes, 1)
	require.Equal(t, "Create a booking", routes[0].Description)
}

func TestExtractDocBlockResetsBuffer(t *testing.T) {
	src := `// old junk
/**
 * Returns the health payload
 */
router.get('/health', health);
`
	routes := New().Extract(src, "/api/test", "test.ts")
	require.Len(t, routes, 1)
	require.Equal(t, "Returns the health payload", routes[0].Description)
}

func TestExtractBufferConsumedByDeclaration(t *testing.T) {
	src := `/**
 * @desc First thing
 */
router.get('/a', a);
router.get('/b', b);
`
	routes := New().Extract(src, "/api/x", "x.ts")
	require.Len(t, routes, 2)
	require.Equal(t, "First thing", routes[0].Description)
	require.Equal(t, "GET /b", routes[1].Name)
	require.Equal(t, "GET /api/x/b", routes[1].Description)
}

func TestExtractLastDescWins(t *testing.T) {
	src := `// @desc First
// @desc Second
router.get('/x', h);
`
	routes := New().Extract(src, "/api/t", "t.ts")
	require.Len(t, routes, 1)
	require.Equal(t, "Second", routes[0].Description)
	require.Equal(t, "Second", routes[0].Name)
}

func TestExtractFirstPlainLineWins(t *testing.T) {
	src := `// First line
// Second line
router.get('/x', h);
`
	routes := New().Extract(src, "/api/t", "t.ts")
	require.Len(t, routes, 1)
	require.Equal(t, "First line", routes[0].Description)
}

func TestExtractDescOverridesPlainLine(t *testing.T) {
	src := `// Plain intro
// @desc Tagged name
router.get('/x', h);
`
	routes := New().Extract(src, "/api/t", "t.ts")
	require.Len(t, routes, 1)
	require.Equal(t, "Tagged name", routes[0].Description)
	require.Equal(t, "Tagged name", routes[0].Name)
}

func TestExtractMethodCaseInsensitive(t *testing.T) {
	src := "router.GET('/caps', h);\nrouter.Delete('/mixed', h);"
	routes := New().Extract(src, "/api/t", "t.ts")
	require.Len(t, routes, 2)
	require.Equal(t, "GET", routes[0].Method)
	require.Equal(t, "DELETE", routes[1].Method)
}

func TestExtractCustomReceivers(t *testing.T) {
	ext := New("app", "adminRouter")
	src := `app.get('/one', h);
adminRouter.post('/two', h);
plainRouter.get('/three', h);
`
	routes := ext.Extract(src, "/api/t", "t.ts")
	require.Len(t, routes, 2)
	require.Equal(t, "/api/t/one", routes[0].Path)
	require.Equal(t, "POST", routes[1].Method)
}

func TestExtractSplitDeclarationIsSkipped(t *testing.T) {
	// Declarations spanning lines are out of reach for a line scanner.
	src := "router.get(\n  '/split',\n  handler,\n);"
	require.Empty(t, New().Extract(src, "/api/t", "t.ts"))
}

func TestExtractEmptySource(t *testing.T) {
	require.Empty(t, New().Extract("", "/api/t", "t.ts"))
}

func TestExtractLineNumbers(t *testing.T) {
	src := "\n\nrouter.get('/a', h);\n\nrouter.post('/b', h);"
	routes := New().Extract(src, "/api/t", "t.ts")
	require.Len(t, routes, 2)
	require.Equal(t, 3, routes[0].Line)
	require.Equal(t, 5, routes[1].Line)
}
