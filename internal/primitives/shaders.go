package primitives

import "scene-demo/internal/lighting"

// All programs share the raylib vertex attribute names (vertexPosition, vertexTexCoord,
// vertexNormal) and the texture0 sampler so that rl.DrawMesh binds them. Lighting is done
// in eye space; the matrices come from the frame, not from raylib's matrix stack.

const commonVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 u_ProjectionMatrix;
uniform mat4 u_ModelviewMatrix;
uniform mat4 u_NormalMatrix;
uniform vec2 u_TexScale;
out vec3 fragPosition;
out vec3 fragNormal;
out vec2 fragTexCoord;
void main() {
  vec4 eyePos = u_ModelviewMatrix * vec4(vertexPosition, 1.0);
  fragPosition = eyePos.xyz;
  fragNormal = mat3(u_NormalMatrix) * vertexNormal;
  fragTexCoord = vertexTexCoord * u_TexScale;
  gl_Position = u_ProjectionMatrix * eyePos;
}
`

// perVertexVS lights each vertex with the directional light only.
const perVertexVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 u_ProjectionMatrix;
uniform mat4 u_ModelviewMatrix;
uniform mat4 u_NormalMatrix;
uniform vec2 u_TexScale;
uniform vec3 u_LightDir;
uniform vec3 u_LightColor;
out vec2 fragTexCoord;
out vec3 vertLight;
const vec3 ambient = vec3(0.2);
void main() {
  vec3 N = normalize(mat3(u_NormalMatrix) * vertexNormal);
  float NdotL = max(dot(N, u_LightDir), 0.0);
  vertLight = ambient + u_LightColor * NdotL;
  fragTexCoord = vertexTexCoord * u_TexScale;
  gl_Position = u_ProjectionMatrix * u_ModelviewMatrix * vec4(vertexPosition, 1.0);
}
`

const perVertexFS = `#version 330
in vec2 fragTexCoord;
in vec3 vertLight;
uniform sampler2D texture0;
uniform vec4 u_Tint;
out vec4 finalColor;
void main() {
  vec4 base = texture(texture0, fragTexCoord) * u_Tint;
  finalColor = vec4(base.rgb * vertLight, base.a);
}
`

// blinnPhongHeader declares the inputs and helpers shared by the per-fragment models.
const blinnPhongHeader = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
in vec2 fragTexCoord;
uniform sampler2D texture0;
uniform vec4 u_Tint;
uniform vec3 u_LightDir;
uniform vec3 u_LightColor;
uniform vec3 u_MatEmissiveColor;
uniform vec3 u_MatSpecularColor;
uniform float u_MatShininess;
uniform float u_NumPointLights;
uniform vec3 u_PointLightPosition[4];
uniform vec3 u_PointLightColor[4];
uniform vec3 u_PointLightAttenuation[4];
out vec4 finalColor;
const vec3 ambient = vec3(0.2);

vec3 shade(vec3 N, vec3 L, vec3 V, vec3 color, vec3 base) {
  float NdotL = max(dot(N, L), 0.0);
  if (NdotL <= 0.0) {
    return vec3(0.0);
  }
  vec3 H = normalize(L + V);
  float spec = pow(max(dot(N, H), 0.0), max(u_MatShininess, 1.0));
  return color * (base * NdotL + u_MatSpecularColor * spec);
}

vec3 directional(vec3 N, vec3 V, vec3 base) {
  return shade(N, normalize(u_LightDir), V, u_LightColor, base);
}

vec3 points(vec3 N, vec3 V, vec3 base) {
  vec3 sum = vec3(0.0);
  for (int i = 0; i < 4; i++) {
    if (float(i) >= u_NumPointLights) {
      break;
    }
    vec3 toLight = u_PointLightPosition[i] - fragPosition;
    float d = length(toLight);
    vec3 a = u_PointLightAttenuation[i];
    float att = 1.0 / max(a.x + a.y * d + a.z * d * d, 1e-4);
    sum += att * shade(N, toLight / max(d, 1e-4), V, u_PointLightColor[i], base);
  }
  return sum;
}
`

const blinnPhongDirFS = blinnPhongHeader + `
void main() {
  vec4 base = texture(texture0, fragTexCoord) * u_Tint;
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(-fragPosition);
  vec3 c = u_MatEmissiveColor + ambient * base.rgb + directional(N, V, base.rgb);
  finalColor = vec4(c, base.a);
}
`

const blinnPhongPointFS = blinnPhongHeader + `
void main() {
  vec4 base = texture(texture0, fragTexCoord) * u_Tint;
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(-fragPosition);
  vec3 c = u_MatEmissiveColor + ambient * base.rgb + points(N, V, base.rgb);
  finalColor = vec4(c, base.a);
}
`

const blinnPhongMultiFS = blinnPhongHeader + `
void main() {
  vec4 base = texture(texture0, fragTexCoord) * u_Tint;
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(-fragPosition);
  vec3 c = u_MatEmissiveColor + ambient * base.rgb + directional(N, V, base.rgb) + points(N, V, base.rgb);
  finalColor = vec4(c, base.a);
}
`

// programSources holds the vertex and fragment source for each lighting model.
var programSources = [lighting.NumModels][2]string{
	lighting.PerVertexDirLight:    {perVertexVS, perVertexFS},
	lighting.BlinnPhongDirLight:   {commonVS, blinnPhongDirFS},
	lighting.BlinnPhongPointLight: {commonVS, blinnPhongPointFS},
	lighting.BlinnPhongMultiLight: {commonVS, blinnPhongMultiFS},
}
