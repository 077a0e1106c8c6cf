package chain

// factoryABI covers the parts of the launch factory the bot calls.
const factoryABI = `[
  {
    "type": "function",
    "name": "hatch",
    "stateMutability": "payable",
    "inputs": [
      {"name": "name", "type": "string"},
      {"name": "symbol", "type": "string"},
      {"name": "creator", "type": "address"},
      {"name": "salt", "type": "bytes32"},
      {"name": "tokenURI", "type": "string"}
    ],
    "outputs": [{"name": "token", "type": "address"}]
  },
  {
    "type": "function",
    "name": "migrate",
    "stateMutability": "nonpayable",
    "inputs": [{"name": "token", "type": "address"}],
    "outputs": []
  },
  {
    "type": "event",
    "name": "Hatch",
    "anonymous": false,
    "inputs": [
      {"name": "token", "type": "address", "indexed": true},
      {"name": "creator", "type": "address", "indexed": true},
      {"name": "name", "type": "string", "indexed": false},
      {"name": "symbol", "type": "string", "indexed": false},
      {"name": "tokenURI", "type": "string", "indexed": false}
    ]
  }
]`
