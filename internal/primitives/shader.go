package primitives

// Lambert diffuse plus a flat ambient term and a small specular highlight.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
uniform mat4 mvp;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  fragPosition = vec3(matModel * vec4(vertexPosition, 1.0));
  fragNormal = normalize(mat3(matModel) * vertexNormal);
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
out vec4 finalColor;
void main() {
  vec3 n = normalize(fragNormal);
  vec3 l = normalize(lightDir);
  float diff = max(dot(n, l), 0.0);
  vec3 h = normalize(l + normalize(viewPos - fragPosition));
  float spec = pow(max(dot(n, h), 0.0), 32.0) * 0.25 * step(0.0, diff);
  vec3 rgb = colDiffuse.rgb * (0.25 + 0.75 * diff) + vec3(spec);
  finalColor = vec4(rgb, colDiffuse.a);
}
`
)
