package asset

import (
	"os"

	"github.com/google/uuid"
)

type AssetId string

// Shader is a handle into the server's shader table.
type Shader struct {
	assetId AssetId
}

type ShaderAsset struct {
	version uint
	name    string
	listing string
}

// Server keeps loaded shader sources keyed by asset id.
type Server struct {
	shaders map[AssetId]ShaderAsset
}

func NewServer() *Server {
	return &Server{
		shaders: map[AssetId]ShaderAsset{},
	}
}

// RegisterShader stores an in-memory WGSL listing under the given name.
func (server *Server) RegisterShader(name string, listing string) Shader {
	id := makeAssetId()

	server.shaders[id] = ShaderAsset{
		version: 0,
		name:    name,
		listing: listing,
	}

	return Shader{
		assetId: id,
	}
}

// LoadShader reads a WGSL listing from disk. Panics if the file cannot be
// read; a missing shader file is a setup error, not something to recover from.
func (server *Server) LoadShader(filename string) Shader {
	shaderData, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}
	return server.RegisterShader(filename, string(shaderData))
}

// Listing returns the WGSL source for a shader handle, or "" for an unknown
// handle.
func (server *Server) Listing(shader Shader) string {
	return server.shaders[shader.assetId].listing
}

// Name returns the name a shader was registered under.
func (server *Server) Name(shader Shader) string {
	return server.shaders[shader.assetId].name
}

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}
