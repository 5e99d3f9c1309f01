package subgraph

const positionsQuery = `
query positionsForPair($token0: String!, $token1: String!) {
  asToken0: positions(
    first: 1000
    orderBy: liquidity
    orderDirection: desc
    where: { token0: $token0, token1: $token1 }
  ) {
    pool {
      feeTier
    }
    liquidity
  }
  asToken1: positions(
    first: 1000
    orderBy: liquidity
    orderDirection: desc
    where: { token0: $token1, token1: $token0 }
  ) {
    pool {
      feeTier
    }
    liquidity
  }
}
`

const poolsQuery = `
query poolsForPair($token0: String!, $token1: String!) {
  asToken0: pools(
    orderBy: totalValueLockedToken0
    orderDirection: desc
    where: { token0: $token0, token1: $token1 }
  ) {
    feeTier
    totalValueLockedToken0
    totalValueLockedToken1
  }
  asToken1: pools(
    orderBy: totalValueLockedToken0
    orderDirection: desc
    where: { token0: $token1, token1: $token0 }
  ) {
    feeTier
    totalValueLockedToken0
    totalValueLockedToken1
  }
}
`

const surroundingTicksQuery = `
query surroundingTicks(
  $poolAddress: String!
  $tickIdxLowerBound: BigInt!
  $tickIdxUpperBound: BigInt!
  $skip: Int!
) {
  ticks(
    first: 1000
    skip: $skip
    where: { poolAddress: $poolAddress, tickIdx_lte: $tickIdxUpperBound, tickIdx_gte: $tickIdxLowerBound }
  ) {
    tickIdx
    liquidityGross
    liquidityNet
    price0
    price1
  }
}
`

const poolTickQuery = `
query poolTick($id: ID!) {
  pool(id: $id) {
    tick
  }
}
`

// tickPageSize matches the first: argument of surroundingTicksQuery.
const tickPageSize = 1000
