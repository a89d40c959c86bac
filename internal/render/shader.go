package render

import rl "github.com/gen2brain/raylib-go/raylib"

// maxLights is the number of light slots in the shader. Lights past it are ignored.
const maxLights = 8

// Shading model codes, as read by the fragment shader's shadingModel uniform.
const (
	shadeUnlit   = 0
	shadeLambert = 1
	shadePhong   = 2
	shadePBR     = 3
	shadeToon    = 4
	shadeNormal  = 5
	shadeDepth   = 6
	shadeMatcap  = 7
)

// Light kind codes, as read by the fragment shader's lightType uniform.
const (
	lightAmbient     = 0
	lightPoint       = 1
	lightDirectional = 2
	lightSpot        = 3
	lightHemisphere  = 4
)

func loadLitShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litFS)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 mvp;
uniform mat4 matModel;
uniform mat4 matNormal;
uniform mat4 matView;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
out float fragDepth;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = normalize(vec3(matNormal * vec4(vertexNormal, 0.0)));
  fragDepth = -(matView * worldPos).z;
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	litFS = `#version 330
#define MAX_LIGHTS 8
#define PI 3.14159265359
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
in float fragDepth;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform float shadingModel;
uniform float flatShading;
uniform vec3 emissive;
uniform vec3 specularColor;
uniform float shininess;
uniform float metalness;
uniform float roughness;
uniform float clearcoat;
uniform float clearcoatRoughness;
uniform float nearPlane;
uniform float farPlane;
uniform float lightCount;
uniform float lightType[MAX_LIGHTS];
uniform vec3 lightPos[MAX_LIGHTS];
uniform vec3 lightDir[MAX_LIGHTS];
uniform vec3 lightColor[MAX_LIGHTS];
uniform vec3 lightGround[MAX_LIGHTS];
uniform float lightRange[MAX_LIGHTS];
uniform float lightDecay[MAX_LIGHTS];
uniform float lightCosOuter[MAX_LIGHTS];
uniform float lightCosInner[MAX_LIGHTS];
out vec4 finalColor;

float attenuation(float d, float range, float decay) {
  float a = 1.0 / max(pow(d, decay), 0.01);
  if (range > 0.0) {
    float f = clamp(1.0 - pow(d / range, 4.0), 0.0, 1.0);
    a *= f * f;
  }
  return a;
}

float distributionGGX(float NdotH, float rough) {
  float a = rough * rough;
  float a2 = a * a;
  float d = NdotH * NdotH * (a2 - 1.0) + 1.0;
  return a2 / (PI * d * d);
}

float visibility(float NdotL, float NdotV, float rough) {
  float k = (rough + 1.0) * (rough + 1.0) / 8.0;
  return 1.0 / (4.0 * (NdotL * (1.0 - k) + k) * (NdotV * (1.0 - k) + k));
}

vec3 fresnel(vec3 f0, float VdotH) {
  return f0 + (1.0 - f0) * pow(1.0 - VdotH, 5.0);
}

void main() {
  vec3 base = colDiffuse.rgb;
  float alpha = colDiffuse.a;
  vec3 N = normalize(fragNormal);
  if (flatShading > 0.5) {
    N = normalize(cross(dFdx(fragPosition), dFdy(fragPosition)));
  }
  vec3 V = normalize(viewPos - fragPosition);
  int model = int(shadingModel + 0.5);

  if (model == 0) {
    finalColor = vec4(base, alpha);
    return;
  }
  if (model == 5) {
    finalColor = vec4(N * 0.5 + 0.5, alpha);
    return;
  }
  if (model == 6) {
    float z = clamp((fragDepth - nearPlane) / max(farPlane - nearPlane, 0.0001), 0.0, 1.0);
    finalColor = vec4(vec3(1.0 - z), alpha);
    return;
  }
  if (model == 7) {
    vec3 r = reflect(-V, N);
    finalColor = vec4(base * mix(0.35, 1.0, 0.5 + 0.5 * r.y), alpha);
    return;
  }

  vec3 diffuseColor = base;
  vec3 f0 = specularColor;
  if (model == 3) {
    diffuseColor = base * (1.0 - metalness);
    f0 = mix(vec3(0.04), base, metalness);
  }

  vec3 total = emissive;
  for (int i = 0; i < MAX_LIGHTS; i++) {
    if (float(i) >= lightCount) {
      break;
    }
    int kind = int(lightType[i] + 0.5);
    vec3 radiance = lightColor[i];
    if (kind == 0) {
      total += diffuseColor * radiance;
      continue;
    }
    if (kind == 4) {
      float w = 0.5 * N.y + 0.5;
      total += diffuseColor * mix(lightGround[i], radiance, w);
      continue;
    }
    vec3 L;
    if (kind == 2) {
      L = normalize(lightDir[i]);
    } else {
      vec3 toLight = lightPos[i] - fragPosition;
      float d = length(toLight);
      L = toLight / max(d, 0.0001);
      radiance *= attenuation(d, lightRange[i], lightDecay[i]);
      if (kind == 3) {
        float c = dot(-L, normalize(lightDir[i]));
        radiance *= smoothstep(lightCosOuter[i], lightCosInner[i], c);
      }
    }
    float NdotL = max(dot(N, L), 0.0);
    if (NdotL <= 0.0) {
      continue;
    }
    if (model == 4) {
      float band = NdotL > 0.5 ? 1.0 : 0.5;
      total += diffuseColor * radiance * band;
      continue;
    }
    total += diffuseColor * radiance * NdotL;

    vec3 H = normalize(L + V);
    float NdotH = max(dot(N, H), 0.0);
    if (model == 2) {
      total += f0 * radiance * pow(NdotH, max(shininess, 1.0)) * NdotL;
    } else if (model == 3) {
      float NdotV = max(dot(N, V), 0.0001);
      float VdotH = max(dot(V, H), 0.0);
      float r = max(roughness, 0.04);
      total += fresnel(f0, VdotH) * distributionGGX(NdotH, r) * visibility(NdotL, NdotV, r) * radiance * NdotL;
      if (clearcoat > 0.0) {
        float cr = max(clearcoatRoughness, 0.04);
        total += clearcoat * fresnel(vec3(0.04), VdotH) * distributionGGX(NdotH, cr) * visibility(NdotL, NdotV, cr) * radiance * NdotL;
      }
    }
  }
  finalColor = vec4(total, alpha);
}
`
)
