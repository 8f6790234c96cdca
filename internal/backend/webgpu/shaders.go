//go:build windows

// Package webgpu provides embedded WGSL compute shaders for random generation.
package webgpu

// WGSL compute shaders running philox4x32-10. Each invocation computes one
// counter block (four 32-bit values) from (key, counter + thread index), so
// the output for any position is independent of dispatch order. The philox
// constants match internal/random.Philox, which serves as the CPU reference
// in tests.

// workgroupSize is the default number of threads per workgroup.
const workgroupSize = 256

// philoxCommon holds the generator shared by the random shaders.
// WGSL has no 32x32 -> 64 bit multiply, so mul_hi is emulated with 16-bit
// halves.
const philoxCommon = `
const PHILOX_M0: u32 = 0xD2511F53u;
const PHILOX_M1: u32 = 0xCD9E8D57u;
const PHILOX_W0: u32 = 0x9E3779B9u;
const PHILOX_W1: u32 = 0xBB67AE85u;

fn mul_hi(a: u32, b: u32) -> u32 {
    let a_lo = a & 0xFFFFu;
    let a_hi = a >> 16u;
    let b_lo = b & 0xFFFFu;
    let b_hi = b >> 16u;
    let mid = a_hi * b_lo + ((a_lo * b_lo) >> 16u);
    let mid2 = a_lo * b_hi + (mid & 0xFFFFu);
    return a_hi * b_hi + (mid >> 16u) + (mid2 >> 16u);
}

fn philox_round(ctr: vec4<u32>, key: vec2<u32>) -> vec4<u32> {
    let hi0 = mul_hi(PHILOX_M0, ctr.x);
    let lo0 = PHILOX_M0 * ctr.x;
    let hi1 = mul_hi(PHILOX_M1, ctr.z);
    let lo1 = PHILOX_M1 * ctr.z;
    return vec4<u32>(hi1 ^ ctr.y ^ key.x, lo1, hi0 ^ ctr.w ^ key.y, lo0);
}

fn philox_block(counter_lo: u32, counter_hi: u32, key0: u32, key1: u32) -> vec4<u32> {
    var ctr = vec4<u32>(counter_lo, counter_hi, 0u, 0u);
    var key = vec2<u32>(key0, key1);
    for (var round = 0u; round < 10u; round = round + 1u) {
        ctr = philox_round(ctr, key);
        key.x = key.x + PHILOX_W0;
        key.y = key.y + PHILOX_W1;
    }
    return ctr;
}

fn thread_block(base_lo: u32, base_hi: u32, idx: u32, key0: u32, key1: u32) -> vec4<u32> {
    let lo = base_lo + idx;
    var hi = base_hi;
    if (lo < base_lo) {
        hi = hi + 1u;
    }
    return philox_block(lo, hi, key0, key1);
}

// unit_float maps the top 24 bits of a u32 to [0, 1).
fn unit_float(bits: u32) -> f32 {
    return f32(bits >> 8u) * (1.0 / 16777216.0);
}
`

// uniformShader fills a float32 tensor with samples from U[low, high).
const uniformShader = philoxCommon + `
@group(0) @binding(0) var<storage, read_write> result: array<f32>;

struct Params {
    size: u32,
    key0: u32,
    key1: u32,
    counter_lo: u32,
    counter_hi: u32,
    low: f32,
    high: f32,
}
@group(0) @binding(1) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    let block = thread_block(params.counter_lo, params.counter_hi, idx, params.key0, params.key1);
    let span = params.high - params.low;
    let base = idx * 4u;
    for (var k = 0u; k < 4u; k = k + 1u) {
        if (base + k < params.size) {
            result[base + k] = params.low + unit_float(block[k]) * span;
        }
    }
}
`

// normalShader fills a float32 tensor with N(mean, std²) samples via
// Box-Muller on pairs of philox outputs.
const normalShader = philoxCommon + `
@group(0) @binding(0) var<storage, read_write> result: array<f32>;

struct Params {
    size: u32,
    key0: u32,
    key1: u32,
    counter_lo: u32,
    counter_hi: u32,
    mean: f32,
    std: f32,
}
@group(0) @binding(1) var<uniform> params: Params;

const TWO_PI: f32 = 6.28318530718;

fn box_muller(b0: u32, b1: u32) -> vec2<f32> {
    let u1 = max(unit_float(b0), 1.0e-7);
    let u2 = unit_float(b1);
    let r = sqrt(-2.0 * log(u1));
    return vec2<f32>(r * cos(TWO_PI * u2), r * sin(TWO_PI * u2));
}

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    let block = thread_block(params.counter_lo, params.counter_hi, idx, params.key0, params.key1);
    let z01 = box_muller(block.x, block.y);
    let z23 = box_muller(block.z, block.w);
    let samples = vec4<f32>(z01.x, z01.y, z23.x, z23.y);
    let base = idx * 4u;
    for (var k = 0u; k < 4u; k = k + 1u) {
        if (base + k < params.size) {
            result[base + k] = params.mean + params.std * samples[k];
        }
    }
}
`

// randintShader fills an int32 tensor with integers from [low, high).
const randintShader = philoxCommon + `
@group(0) @binding(0) var<storage, read_write> result: array<i32>;

struct Params {
    size: u32,
    key0: u32,
    key1: u32,
    counter_lo: u32,
    counter_hi: u32,
    low: i32,
    span: u32,
}
@group(0) @binding(1) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    let block = thread_block(params.counter_lo, params.counter_hi, idx, params.key0, params.key1);
    let base = idx * 4u;
    for (var k = 0u; k < 4u; k = k + 1u) {
        if (base + k < params.size) {
            result[base + k] = params.low + i32(block[k] % params.span);
        }
    }
}
`
