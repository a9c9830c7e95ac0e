package shopify

// GraphQL documents for the Storefront API.

const productsQuery = `
query StorefrontProducts($first: Int!, $after: String) {
  products(first: $first, after: $after) {
    pageInfo {
      hasNextPage
      endCursor
    }
    edges {
      node {
        id
        title
        description
        productType
        handle
        images(first: 10) {
          edges {
            node {
              url
              altText
            }
          }
        }
        variants(first: 20) {
          edges {
            node {
              id
              title
              price {
                amount
                currencyCode
              }
              image {
                url
                altText
              }
            }
          }
        }
      }
    }
  }
}`

const collectionsQuery = `
query StorefrontCollections($first: Int!, $productCount: Int!) {
  collections(first: $first) {
    edges {
      node {
        id
        handle
        title
        products(first: $productCount) {
          edges {
            node {
              id
            }
          }
        }
      }
    }
  }
}`

const cartFieldsFragment = `
fragment CartFields on Cart {
  id
  checkoutUrl
  lines(first: 50) {
    edges {
      node {
        id
        quantity
        merchandise {
          ... on ProductVariant {
            id
            title
            price {
              amount
            }
            image {
              url
            }
            product {
              title
            }
          }
        }
      }
    }
  }
}`

const cartQuery = `
query StorefrontCart($id: ID!) {
  cart(id: $id) {
    ...CartFields
  }
}` + cartFieldsFragment

const cartCreateMutation = `
mutation StorefrontCartCreate {
  cartCreate {
    cart {
      ...CartFields
    }
    userErrors {
      field
      message
    }
  }
}` + cartFieldsFragment

const cartLinesAddMutation = `
mutation StorefrontCartLinesAdd($cartId: ID!, $lines: [CartLineInput!]!) {
  cartLinesAdd(cartId: $cartId, lines: $lines) {
    cart {
      ...CartFields
    }
    userErrors {
      field
      message
    }
  }
}` + cartFieldsFragment

const cartLinesRemoveMutation = `
mutation StorefrontCartLinesRemove($cartId: ID!, $lineIds: [ID!]!) {
  cartLinesRemove(cartId: $cartId, lineIds: $lineIds) {
    cart {
      ...CartFields
    }
    userErrors {
      field
      message
    }
  }
}` + cartFieldsFragment

const cartLinesUpdateMutation = `
mutation StorefrontCartLinesUpdate($cartId: ID!, $lines: [CartLineUpdateInput!]!) {
  cartLinesUpdate(cartId: $cartId, lines: $lines) {
    cart {
      ...CartFields
    }
    userErrors {
      field
      message
    }
  }
}` + cartFieldsFragment
